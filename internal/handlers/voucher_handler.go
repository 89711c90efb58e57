package handlers

import (
	"net/http"

	"golang-coffee-backend/internal/middleware"
	"golang-coffee-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	voucherService *services.VoucherService
}

func NewVoucherHandler(voucherService *services.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

// RegisterRoutes registers the voucher listing route
func (h *VoucherHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	vouchers := router.Group("/vouchers", authMiddleware.AuthRequired())
	{
		vouchers.GET("", h.GetVouchers)
	}
}

// @Summary List active vouchers
// @Tags vouchers
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Voucher
// @Failure 500 {object} ErrorResponse
// @Router /vouchers [get]
func (h *VoucherHandler) GetVouchers(c *gin.Context) {
	vouchers, err := h.voucherService.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get vouchers", err)
		return
	}

	c.JSON(http.StatusOK, vouchers)
}
