package services

import (
	"context"
	"errors"
	"time"

	"golang-coffee-backend/internal/models"
	"golang-coffee-backend/internal/repositories"
	"golang-coffee-backend/pkg/cache"
)

type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.ProductCategoryRepository
	cache        *cache.RedisCache
}

func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.ProductCategoryRepository,
	cache *cache.RedisCache,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Page     int              `json:"page"`
}

func (s *ProductService) GetProducts(ctx context.Context, category string, page, limit int) (*ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	// The menu changes rarely; first page per category is cached.
	cacheKey := "products:" + category
	if page == 1 {
		var cached ProductListResponse
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	products, err := s.productRepo.GetAll(ctx, category, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	response := &ProductListResponse{Products: products, Page: page}
	if page == 1 {
		s.cache.Set(ctx, cacheKey, response, time.Minute*10)
	}

	return response, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID int) (*models.Product, error) {
	product, err := s.productRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, errors.New("product not found")
	}
	return product, nil
}

func (s *ProductService) GetFeatured(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.GetFeatured(ctx)
}

func (s *ProductService) SearchProducts(ctx context.Context, query string, page, limit int) (*ProductListResponse, error) {
	if query == "" {
		return nil, errors.New("search query is required")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	products, err := s.productRepo.Search(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &ProductListResponse{Products: products, Page: page}, nil
}

func (s *ProductService) GetCategories(ctx context.Context) ([]models.ProductCategory, error) {
	return s.categoryRepo.GetAll(ctx)
}
