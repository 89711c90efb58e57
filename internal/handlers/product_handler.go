package handlers

import (
	"net/http"
	"strconv"

	"golang-coffee-backend/internal/middleware"
	"golang-coffee-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers the public catalog routes
func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup, _ *middleware.AuthMiddleware) {
	products := router.Group("/products")
	{
		products.GET("", h.GetProducts)
		products.GET("/featured", h.GetFeatured)
		products.GET("/search", h.SearchProducts)
		products.GET("/:product_id", h.GetProduct)
	}

	router.GET("/categories", h.GetCategories)
}

// @Summary List products
// @Description List the menu, optionally filtered by category slug
// @Tags products
// @Produce json
// @Param category query string false "Category slug (iced, hot, pastry, frappe)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} services.ProductListResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (h *ProductHandler) GetProducts(c *gin.Context) {
	category := c.Query("category")
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	products, err := h.productService.GetProducts(c.Request.Context(), category, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get products", err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// @Summary Get featured products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /products/featured [get]
func (h *ProductHandler) GetFeatured(c *gin.Context) {
	products, err := h.productService.GetFeatured(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get featured products", err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// @Summary Search products
// @Tags products
// @Produce json
// @Param q query string true "Search query"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} services.ProductListResponse
// @Failure 400 {object} ErrorResponse
// @Router /products/search [get]
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	products, err := h.productService.SearchProducts(c.Request.Context(), query, page, limit)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Search failed", err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// @Summary Get a single product
// @Tags products
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse
// @Router /products/{product_id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, http.StatusNotFound, "Product not found", err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary List product categories
// @Tags products
// @Produce json
// @Success 200 {array} models.ProductCategory
// @Failure 500 {object} ErrorResponse
// @Router /categories [get]
func (h *ProductHandler) GetCategories(c *gin.Context) {
	categories, err := h.productService.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get categories", err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
