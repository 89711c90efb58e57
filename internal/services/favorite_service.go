package services

import (
	"context"
	"errors"
	"time"

	"golang-coffee-backend/internal/models"
	"golang-coffee-backend/internal/repositories"

	"github.com/google/uuid"
)

type FavoriteService struct {
	favouriteRepo repositories.FavouriteRepository
	productRepo   repositories.ProductRepository
}

func NewFavoriteService(favouriteRepo repositories.FavouriteRepository, productRepo repositories.ProductRepository) *FavoriteService {
	return &FavoriteService{
		favouriteRepo: favouriteRepo,
		productRepo:   productRepo,
	}
}

type ToggleFavoriteResponse struct {
	ProductID   int  `json:"product_id"`
	IsFavourite bool `json:"is_favourite"`
}

type FavoriteListResponse struct {
	Products []models.Product `json:"products"`
}

// ToggleFavorite adds the product to the user's favourites, or removes it
// if already present.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, userID string, productID int) (*ToggleFavoriteResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	exists, err := s.favouriteRepo.Exists(ctx, userUUID, productID)
	if err != nil {
		return nil, err
	}

	if exists {
		if err := s.favouriteRepo.Delete(ctx, userUUID, productID); err != nil {
			return nil, err
		}
		return &ToggleFavoriteResponse{ProductID: productID, IsFavourite: false}, nil
	}

	if _, err := s.productRepo.GetByProductID(ctx, productID); err != nil {
		return nil, errors.New("product not found")
	}

	favourite := &models.Favourite{
		UserID:    userUUID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	if err := s.favouriteRepo.Create(ctx, favourite); err != nil {
		return nil, err
	}

	return &ToggleFavoriteResponse{ProductID: productID, IsFavourite: true}, nil
}

// GetFavorites returns the favourited products, skipping entries whose
// product has since left the catalog.
func (s *FavoriteService) GetFavorites(ctx context.Context, userID string) (*FavoriteListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	favourites, err := s.favouriteRepo.GetByUserID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(favourites))
	for _, favourite := range favourites {
		product, err := s.productRepo.GetByProductID(ctx, favourite.ProductID)
		if err != nil {
			continue
		}
		products = append(products, *product)
	}

	return &FavoriteListResponse{Products: products}, nil
}
