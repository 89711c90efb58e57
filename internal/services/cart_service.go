package services

import (
	"context"
	"errors"
	"fmt"

	"golang-coffee-backend/internal/cart"
	"golang-coffee-backend/internal/pricing"
	"golang-coffee-backend/internal/repositories"
)

// CartService owns the per-user cart session: the cart ledger, the
// fulfillment mode, and the discount selection. Every mutation recomputes
// the price breakdown synchronously.
type CartService struct {
	sessions    SessionStore
	productRepo repositories.ProductRepository
	engine      *pricing.Engine
	catalog     pricing.Catalog
}

func NewCartService(
	sessions SessionStore,
	productRepo repositories.ProductRepository,
	engine *pricing.Engine,
	catalog pricing.Catalog,
) *CartService {
	return &CartService{
		sessions:    sessions,
		productRepo: productRepo,
		engine:      engine,
		catalog:     catalog,
	}
}

type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

type UpdateCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Delta     int `json:"delta" binding:"required,oneof=1 -1"`
}

type ApplyVoucherRequest struct {
	Code string `json:"code" binding:"required"`
}

type SetFulfillmentModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=pickup delivery"`
}

type SetSeniorDiscountRequest struct {
	Enabled bool `json:"enabled"`
}

// CartResponse is the cart view the mobile client renders: the line items
// plus the live price breakdown.
type CartResponse struct {
	Items     []cart.LineItem           `json:"items"`
	Mode      pricing.FulfillmentMode   `json:"mode"`
	Discount  pricing.DiscountSelection `json:"discount"`
	Breakdown *pricing.Breakdown        `json:"breakdown"`
}

func (s *CartService) loadSession(ctx context.Context, userID string) (*CartSession, error) {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return newCartSession(), nil
		}
		return nil, err
	}
	return session, nil
}

func (s *CartService) buildResponse(session *CartSession) (*CartResponse, error) {
	ledger := cart.New()
	ledger.Restore(session.Items)

	breakdown, err := s.engine.ComputeBreakdown(ledger, session.Mode, session.Discount, s.catalog)
	if err != nil {
		return nil, err
	}

	return &CartResponse{
		Items:     ledger.Items(),
		Mode:      session.Mode,
		Discount:  session.Discount,
		Breakdown: breakdown,
	}, nil
}

func (s *CartService) save(ctx context.Context, userID string, session *CartSession) (*CartResponse, error) {
	if err := s.sessions.Save(ctx, userID, session); err != nil {
		return nil, err
	}
	return s.buildResponse(session)
}

// GetCart returns the current session cart, creating an empty one if none
// exists yet.
func (s *CartService) GetCart(ctx context.Context, userID string) (*CartResponse, error) {
	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(session)
}

// AddItem adds one unit of the product to the cart. The product name and
// unit price come from the catalog; quantity is incremented when the
// product is already in the cart.
func (s *CartService) AddItem(ctx context.Context, userID string, productID int) (*CartResponse, error) {
	product, err := s.productRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, errors.New("product not found")
	}
	if !product.IsAvailable {
		return nil, fmt.Errorf("product %q is currently unavailable", product.Name)
	}

	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	ledger := cart.New()
	ledger.Restore(session.Items)
	ledger.Add(product.ProductID, product.Name, product.Price)
	session.Items = ledger.Items()

	return s.save(ctx, userID, session)
}

// UpdateQuantity applies a +1/-1 delta; the item is removed when its
// quantity drops to zero. Unknown product IDs are a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, productID, delta int) (*CartResponse, error) {
	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	ledger := cart.New()
	ledger.Restore(session.Items)
	ledger.UpdateQuantity(productID, delta)
	session.Items = ledger.Items()

	return s.save(ctx, userID, session)
}

// RemoveItem deletes the line item unconditionally.
func (s *CartService) RemoveItem(ctx context.Context, userID string, productID int) (*CartResponse, error) {
	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	ledger := cart.New()
	ledger.Restore(session.Items)
	ledger.Remove(productID)
	session.Items = ledger.Items()

	return s.save(ctx, userID, session)
}

// ClearCart empties the cart. The discount selection and fulfillment mode
// are left untouched.
func (s *CartService) ClearCart(ctx context.Context, userID string) (*CartResponse, error) {
	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	session.Items = nil

	return s.save(ctx, userID, session)
}

// SetFulfillmentMode switches between pickup and delivery. The discount
// selection survives the change.
func (s *CartService) SetFulfillmentMode(ctx context.Context, userID string, mode pricing.FulfillmentMode) (*CartResponse, error) {
	if mode != pricing.ModePickup && mode != pricing.ModeDelivery {
		return nil, errors.New("invalid fulfillment mode")
	}

	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	session.Mode = mode

	return s.save(ctx, userID, session)
}

// SetSeniorDiscount toggles the senior citizen discount. Enabling it clears
// any applied voucher; disabling it returns the selection to none. ID and
// card-photo validation happens at order placement, not here.
func (s *CartService) SetSeniorDiscount(ctx context.Context, userID string, enabled bool) (*CartResponse, error) {
	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if enabled {
		session.Discount = pricing.SeniorCitizen()
	} else if session.Discount.Kind == pricing.DiscountSenior {
		session.Discount = pricing.NoDiscount()
	}

	return s.save(ctx, userID, session)
}

// ApplyVoucher validates and applies a voucher code. It is rejected with
// ErrConflictingDiscount while the senior discount is active and with
// ErrInvalidVoucher for unknown codes; in both cases the prior discount
// state is unchanged.
func (s *CartService) ApplyVoucher(ctx context.Context, userID, code string) (*CartResponse, error) {
	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if session.Discount.Kind == pricing.DiscountSenior {
		return nil, pricing.ErrConflictingDiscount
	}

	normalized := pricing.NormalizeCode(code)
	if _, ok := s.catalog.Lookup(normalized); !ok {
		return nil, pricing.ErrInvalidVoucher
	}

	session.Discount = pricing.Voucher(normalized)

	return s.save(ctx, userID, session)
}

// RemoveVoucher clears an applied voucher.
func (s *CartService) RemoveVoucher(ctx context.Context, userID string) (*CartResponse, error) {
	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if session.Discount.Kind == pricing.DiscountVoucher {
		session.Discount = pricing.NoDiscount()
	}

	return s.save(ctx, userID, session)
}

// Session exposes the raw session for the checkout flow.
func (s *CartService) Session(ctx context.Context, userID string) (*CartSession, error) {
	return s.loadSession(ctx, userID)
}

// ResetAfterOrder empties the cart once an order has been placed. The
// discount selection is cleared too since it was consumed by the order.
func (s *CartService) ResetAfterOrder(ctx context.Context, userID string) error {
	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return err
	}
	session.Items = nil
	session.Discount = pricing.NoDiscount()
	return s.sessions.Save(ctx, userID, session)
}
