package handlers

import (
	"net/http"
	"strconv"

	"golang-coffee-backend/internal/middleware"
	"golang-coffee-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// RegisterRoutes registers the favourites routes
func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	favorites := router.Group("/favorites", authMiddleware.AuthRequired())
	{
		favorites.GET("", h.GetFavorites)
		favorites.POST("/:product_id", h.ToggleFavorite)
	}
}

// @Summary List favourite products
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.FavoriteListResponse
// @Failure 500 {object} ErrorResponse
// @Router /favorites [get]
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)

	favorites, err := h.favoriteService.GetFavorites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get favorites", err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// @Summary Toggle a favourite
// @Description Add the product to favourites, or remove it if already present
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} services.ToggleFavoriteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /favorites/{product_id} [post]
func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	userID := middleware.GetUserID(c)

	result, err := h.favoriteService.ToggleFavorite(c.Request.Context(), userID, productID)
	if err != nil {
		respondError(c, http.StatusNotFound, "Failed to toggle favorite", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
