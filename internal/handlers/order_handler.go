package handlers

import (
	"net/http"

	"golang-coffee-backend/internal/middleware"
	"golang-coffee-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	checkoutService *services.CheckoutService
}

func NewOrderHandler(checkoutService *services.CheckoutService) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService}
}

// RegisterRoutes registers the checkout and order-history routes
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	orders := router.Group("/orders", authMiddleware.AuthRequired())
	{
		orders.POST("", h.PlaceOrder)
		orders.GET("", h.GetOrders)
		orders.GET("/:order_id", h.GetOrder)
	}
}

// @Summary Place an order
// @Description Turn the session cart into an order. Card payments are captured before the order is confirmed; senior discount proof is verified here.
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body services.PlaceOrderRequest true "Checkout data"
// @Success 201 {object} services.PlaceOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	userID := middleware.GetUserID(c)

	response, err := h.checkoutService.PlaceOrder(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to place order", err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary List order history
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} services.OrderListResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	orders, err := h.checkoutService.GetOrders(c.Request.Context(), userID, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get orders", err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// @Summary Get a single order
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} services.OrderDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	order, err := h.checkoutService.GetOrder(c.Request.Context(), userID, c.Param("order_id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Order not found", err)
		return
	}

	c.JSON(http.StatusOK, order)
}
