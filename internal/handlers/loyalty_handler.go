package handlers

import (
	"net/http"

	"golang-coffee-backend/internal/middleware"
	"golang-coffee-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type LoyaltyHandler struct {
	loyaltyService *services.LoyaltyService
}

func NewLoyaltyHandler(loyaltyService *services.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyService: loyaltyService}
}

// RegisterRoutes registers the stamp-card routes
func (h *LoyaltyHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	loyalty := router.Group("/loyalty", authMiddleware.AuthRequired())
	{
		loyalty.GET("", h.GetProgress)
		loyalty.POST("/claim", h.ClaimReward)
	}
}

// @Summary Get stamp-card progress
// @Tags loyalty
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.LoyaltyProgressResponse
// @Failure 500 {object} ErrorResponse
// @Router /loyalty [get]
func (h *LoyaltyHandler) GetProgress(c *gin.Context) {
	userID := middleware.GetUserID(c)

	progress, err := h.loyaltyService.GetProgress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get loyalty progress", err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// @Summary Claim the free drink reward
// @Description Redeem a full stamp card and start a new one
// @Tags loyalty
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.LoyaltyProgressResponse
// @Failure 400 {object} ErrorResponse
// @Router /loyalty/claim [post]
func (h *LoyaltyHandler) ClaimReward(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.loyaltyService.ClaimReward(c.Request.Context(), userID); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to claim reward", err)
		return
	}

	progress, err := h.loyaltyService.GetProgress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get loyalty progress", err)
		return
	}

	c.JSON(http.StatusOK, progress)
}
