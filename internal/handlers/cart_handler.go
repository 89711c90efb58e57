package handlers

import (
	"net/http"
	"strconv"

	"golang-coffee-backend/internal/middleware"
	"golang-coffee-backend/internal/pricing"
	"golang-coffee-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// RegisterRoutes registers the routes for cart management
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	// All cart routes require authentication
	cart := router.Group("/cart", authMiddleware.AuthRequired())
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddToCart)
		cart.PATCH("/items", h.UpdateCartItem)
		cart.DELETE("/items/:product_id", h.RemoveFromCart)
		cart.DELETE("", h.ClearCart)
		cart.PUT("/fulfillment", h.SetFulfillmentMode)
		cart.PUT("/senior-discount", h.SetSeniorDiscount)
		cart.POST("/vouchers", h.ApplyVoucher)
		cart.DELETE("/vouchers", h.RemoveVoucher)
	}
}

// @Summary Get user's cart
// @Description Get the session cart with its live price breakdown
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.CartResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	cart, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get cart", err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// @Summary Add item to cart
// @Description Add one unit of a product; quantity increments if it is already in the cart
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body services.AddToCartRequest true "Cart item data"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	userID := middleware.GetUserID(c)

	cart, err := h.cartService.AddItem(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		respondError(c, http.StatusNotFound, "Failed to add item to cart", err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// @Summary Update cart item quantity
// @Description Apply a +1 or -1 delta; the item is removed when quantity reaches zero
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body services.UpdateCartItemRequest true "Quantity delta"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items [patch]
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req services.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	userID := middleware.GetUserID(c)

	cart, err := h.cartService.UpdateQuantity(c.Request.Context(), userID, req.ProductID, req.Delta)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update cart item", err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// @Summary Remove item from cart
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	userID := middleware.GetUserID(c)

	cart, err := h.cartService.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to remove item from cart", err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// @Summary Clear user's cart
// @Description Remove all items; the discount selection and fulfillment mode stay
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.CartResponse
// @Failure 500 {object} ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	cart, err := h.cartService.ClearCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to clear cart", err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// @Summary Set fulfillment mode
// @Description Switch the session between pickup and delivery
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param mode body services.SetFulfillmentModeRequest true "Fulfillment mode"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/fulfillment [put]
func (h *CartHandler) SetFulfillmentMode(c *gin.Context) {
	var req services.SetFulfillmentModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	userID := middleware.GetUserID(c)

	cart, err := h.cartService.SetFulfillmentMode(c.Request.Context(), userID, pricing.FulfillmentMode(req.Mode))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to set fulfillment mode", err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// @Summary Toggle senior citizen discount
// @Description Enabling the discount replaces any applied voucher. ID verification happens at order placement.
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param toggle body services.SetSeniorDiscountRequest true "Toggle state"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/senior-discount [put]
func (h *CartHandler) SetSeniorDiscount(c *gin.Context) {
	var req services.SetSeniorDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	userID := middleware.GetUserID(c)

	cart, err := h.cartService.SetSeniorDiscount(c.Request.Context(), userID, req.Enabled)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update senior discount", err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// @Summary Apply voucher to cart
// @Description Apply a promo code. Rejected while the senior discount is active.
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param voucher body services.ApplyVoucherRequest true "Voucher code"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cart/vouchers [post]
func (h *CartHandler) ApplyVoucher(c *gin.Context) {
	var req services.ApplyVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	userID := middleware.GetUserID(c)

	cart, err := h.cartService.ApplyVoucher(c.Request.Context(), userID, req.Code)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to apply voucher", err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// @Summary Remove voucher from cart
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.CartResponse
// @Failure 500 {object} ErrorResponse
// @Router /cart/vouchers [delete]
func (h *CartHandler) RemoveVoucher(c *gin.Context) {
	userID := middleware.GetUserID(c)

	cart, err := h.cartService.RemoveVoucher(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to remove voucher", err)
		return
	}

	c.JSON(http.StatusOK, cart)
}
