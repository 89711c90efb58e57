package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang-coffee-backend/internal/models"
	"golang-coffee-backend/internal/pricing"
	"golang-coffee-backend/internal/repositories"
	"golang-coffee-backend/pkg/messaging"
	"golang-coffee-backend/pkg/payment"

	"github.com/google/uuid"
)

const (
	PaymentMethodCard = "card"
	PaymentMethodCOD  = "cod"
)

// CheckoutService turns the session cart into a persisted order. Payment
// capture goes through the payment-intent client for card orders; cash
// orders stay Pending until the counter settles them.
type CheckoutService struct {
	cartService  *CartService
	orderRepo    repositories.OrderRepository
	paymentRepo  repositories.PaymentRepository
	loyalty      *LoyaltyService
	stripeClient *payment.StripeClient
	producer     *messaging.KafkaProducer
}

func NewCheckoutService(
	cartService *CartService,
	orderRepo repositories.OrderRepository,
	paymentRepo repositories.PaymentRepository,
	loyalty *LoyaltyService,
	stripeClient *payment.StripeClient,
	producer *messaging.KafkaProducer,
) *CheckoutService {
	return &CheckoutService{
		cartService:  cartService,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		loyalty:      loyalty,
		stripeClient: stripeClient,
		producer:     producer,
	}
}

type PlaceOrderRequest struct {
	Name          string `json:"name" binding:"required"`
	Contact       string `json:"contact" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=card cod"`

	// Delivery details, required when the session mode is delivery.
	AddressLine string `json:"address_line"`
	Barangay    string `json:"barangay"`

	// Senior citizen proof, required at placement time when the senior
	// discount is selected.
	SeniorCitizenID string `json:"senior_citizen_id"`
	SeniorCardPhoto string `json:"senior_card_photo"` // uploaded object reference

	CardholderName string `json:"cardholder_name"`
}

type PlaceOrderResponse struct {
	OrderID   string             `json:"order_id"`
	PaymentID string             `json:"payment_id"`
	Status    string             `json:"status"`
	Breakdown *pricing.Breakdown `json:"breakdown"`
}

type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
	Page   int            `json:"page"`
}

// PlaceOrder validates the checkout request against the session cart and
// persists the order with its full price breakdown. Validation of the
// senior citizen ID and card photo happens here, not when the toggle is
// switched on.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID string, req *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	session, err := s.cartService.Session(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(session.Items) == 0 {
		return nil, pricing.ErrEmptyCart
	}

	if session.Discount.Kind == pricing.DiscountSenior {
		if len(strings.TrimSpace(req.SeniorCitizenID)) < 5 {
			return nil, errors.New("a valid senior citizen ID number is required")
		}
		if req.SeniorCardPhoto == "" {
			return nil, errors.New("a photo of the senior citizen card is required to apply the discount")
		}
	}

	if session.Mode == pricing.ModeDelivery {
		if req.AddressLine == "" || req.Barangay == "" {
			return nil, errors.New("delivery address and barangay are required")
		}
		if !IsValidBarangay(req.Barangay) {
			return nil, errors.New("delivery is not available in the selected barangay")
		}
	}

	if req.PaymentMethod == PaymentMethodCard && req.CardholderName == "" {
		return nil, errors.New("cardholder name is required for card payment")
	}

	response, err := s.cartService.buildResponse(session)
	if err != nil {
		return nil, err
	}
	breakdown := response.Breakdown

	items := make([]map[string]interface{}, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, map[string]interface{}{
			"product_id": item.ProductID,
			"name":       item.Name,
			"unit_price": item.UnitPrice,
			"quantity":   item.Quantity,
		})
	}

	shipping := models.JSONB{
		"name":    req.Name,
		"contact": req.Contact,
	}
	if session.Mode == pricing.ModeDelivery {
		shipping["address"] = req.AddressLine
		shipping["barangay"] = req.Barangay
	} else {
		shipping["address"] = "N/A (Pickup)"
	}

	order := &models.Order{
		ID:              uuid.New(),
		UserID:          userUUID,
		Status:          "Pending",
		OrderType:       string(session.Mode),
		PaymentMethod:   req.PaymentMethod,
		Items:           models.JSONB{"line_items": items},
		Subtotal:        breakdown.Subtotal,
		FulfillmentFee:  breakdown.FulfillmentFee,
		DiscountAmount:  breakdown.DiscountAmount,
		DiscountLabel:   breakdown.DiscountLabel,
		TotalAmount:     breakdown.Total,
		CustomerName:    req.Name,
		CustomerContact: req.Contact,
		ShippingDetails: shipping,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	paymentRecord := &models.Payment{
		ID:        uuid.New(),
		OrderID:   order.ID,
		UserID:    userUUID,
		Amount:    breakdown.Total,
		Currency:  "php",
		Method:    req.PaymentMethod,
		Status:    "pending",
		CreatedAt: time.Now(),
		Metadata:  models.JSONB{},
	}

	if req.PaymentMethod == PaymentMethodCard {
		intent, err := s.stripeClient.CreatePaymentIntent(ctx, payment.ToMinorUnits(breakdown.Total), map[string]string{
			"user_id":   userID,
			"user_name": req.Name,
		})
		if err != nil {
			return nil, fmt.Errorf("payment authorization failed: %v", err)
		}
		paymentRecord.PaymentIntentID = intent.ID
		paymentRecord.Status = "success"
		paymentRecord.Metadata = models.JSONB{"client_secret": intent.ClientSecret, "intent_status": intent.Status}
		order.Status = "Paid"
	}

	if err := s.orderRepo.CreateWithPayment(ctx, order, paymentRecord); err != nil {
		return nil, err
	}

	// One stamp per placed order. A failed stamp never fails the order.
	if err := s.loyalty.AwardStamp(ctx, userUUID); err != nil {
		log.Printf("Failed to award loyalty stamp for order %s: %v", order.ID, err)
	}

	s.publishOrderPlaced(ctx, order)
	if paymentRecord.Status == "success" {
		s.publishPaymentCaptured(ctx, order, paymentRecord)
	}

	if err := s.cartService.ResetAfterOrder(ctx, userID); err != nil {
		log.Printf("Failed to reset cart for user %s: %v", userID, err)
	}

	return &PlaceOrderResponse{
		OrderID:   order.ID.String(),
		PaymentID: paymentRecord.ID.String(),
		Status:    order.Status,
		Breakdown: breakdown,
	}, nil
}

func (s *CheckoutService) publishOrderPlaced(ctx context.Context, order *models.Order) {
	event := map[string]interface{}{
		"order_id":       order.ID.String(),
		"user_id":        order.UserID.String(),
		"status":         order.Status,
		"order_type":     order.OrderType,
		"payment_method": order.PaymentMethod,
		"total_amount":   order.TotalAmount,
		"placed_at":      order.CreatedAt,
	}
	if err := s.producer.SendMessage(ctx, messaging.TopicOrderPlaced, order.UserID.String(), event); err != nil {
		log.Printf("Failed to publish order.placed event for %s: %v", order.ID, err)
	}
}

func (s *CheckoutService) publishPaymentCaptured(ctx context.Context, order *models.Order, paymentRecord *models.Payment) {
	event := map[string]interface{}{
		"payment_id":        paymentRecord.ID.String(),
		"order_id":          order.ID.String(),
		"user_id":           order.UserID.String(),
		"amount":            paymentRecord.Amount,
		"currency":          paymentRecord.Currency,
		"payment_intent_id": paymentRecord.PaymentIntentID,
	}
	if err := s.producer.SendMessage(ctx, messaging.TopicPaymentCaptured, order.UserID.String(), event); err != nil {
		log.Printf("Failed to publish payment.captured event for %s: %v", paymentRecord.ID, err)
	}
}

// GetOrders lists the user's order history, newest first.
func (s *CheckoutService) GetOrders(ctx context.Context, userID string, page, limit int) (*OrderListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	orders, err := s.orderRepo.GetByUserID(ctx, userUUID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &OrderListResponse{Orders: orders, Page: page}, nil
}

// OrderDetailResponse is the receipt view: the order plus its payment row.
type OrderDetailResponse struct {
	Order   models.Order    `json:"order"`
	Payment *models.Payment `json:"payment,omitempty"`
}

// GetOrder fetches a single order with its payment, scoped to the
// requesting user.
func (s *CheckoutService) GetOrder(ctx context.Context, userID, orderID string) (*OrderDetailResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, errors.New("invalid order ID")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("order not found")
	}
	if order.UserID != userUUID {
		return nil, errors.New("order not found")
	}

	detail := &OrderDetailResponse{Order: *order}
	if payment, err := s.paymentRepo.GetByOrderID(ctx, order.ID); err == nil {
		detail.Payment = payment
	}

	return detail, nil
}
