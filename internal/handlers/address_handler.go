package handlers

import (
	"net/http"

	"golang-coffee-backend/internal/middleware"
	"golang-coffee-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// RegisterRoutes registers the delivery address routes
func (h *AddressHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	// The coverage list is public so the app can show it before login
	router.GET("/delivery/barangays", h.GetBarangays)

	addresses := router.Group("/addresses", authMiddleware.AuthRequired())
	{
		addresses.POST("", h.CreateAddress)
		addresses.GET("", h.GetAddresses)
		addresses.PUT("/:address_id", h.UpdateAddress)
		addresses.DELETE("/:address_id", h.DeleteAddress)
	}
}

// @Summary List delivery barangays
// @Description Barangays the shop delivers to
// @Tags addresses
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /delivery/barangays [get]
func (h *AddressHandler) GetBarangays(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"barangays": services.DeliveryBarangays})
}

// @Summary Create a delivery address
// @Tags addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body services.CreateAddressRequest true "Address data"
// @Success 201 {object} models.Address
// @Failure 400 {object} ErrorResponse
// @Router /addresses [post]
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var req services.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	userID := middleware.GetUserID(c)

	address, err := h.addressService.CreateAddress(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to create address", err)
		return
	}

	c.JSON(http.StatusCreated, address)
}

// @Summary List delivery addresses
// @Tags addresses
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Address
// @Failure 500 {object} ErrorResponse
// @Router /addresses [get]
func (h *AddressHandler) GetAddresses(c *gin.Context) {
	userID := middleware.GetUserID(c)

	addresses, err := h.addressService.GetAddresses(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get addresses", err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}

// @Summary Update a delivery address
// @Tags addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param address_id path string true "Address ID"
// @Param request body services.UpdateAddressRequest true "Address updates"
// @Success 200 {object} models.Address
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /addresses/{address_id} [put]
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	var req services.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	userID := middleware.GetUserID(c)

	address, err := h.addressService.UpdateAddress(c.Request.Context(), userID, c.Param("address_id"), &req)
	if err != nil {
		respondError(c, http.StatusNotFound, "Failed to update address", err)
		return
	}

	c.JSON(http.StatusOK, address)
}

// @Summary Delete a delivery address
// @Tags addresses
// @Security BearerAuth
// @Param address_id path string true "Address ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /addresses/{address_id} [delete]
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.addressService.DeleteAddress(c.Request.Context(), userID, c.Param("address_id")); err != nil {
		respondError(c, http.StatusNotFound, "Failed to delete address", err)
		return
	}

	c.Status(http.StatusNoContent)
}
