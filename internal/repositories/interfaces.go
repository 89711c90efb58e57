package repositories

import (
	"context"

	"golang-coffee-backend/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository interface for PostgreSQL user operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AddressRepository interface for PostgreSQL address operations
type AddressRepository interface {
	Create(ctx context.Context, address *models.Address) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, id uuid.UUID) error
	UnsetDefaultAddresses(ctx context.Context, userID uuid.UUID) error
}

// OrderRepository interface for PostgreSQL order operations
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	CreateWithPayment(ctx context.Context, order *models.Order, payment *models.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, error)
	GetByStatus(ctx context.Context, status string, limit, offset int) ([]models.Order, error)
}

// PaymentRepository interface for PostgreSQL payment operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
}

// VoucherRepository interface for PostgreSQL voucher operations
type VoucherRepository interface {
	Create(ctx context.Context, voucher *models.Voucher) error
	GetByCode(ctx context.Context, code string) (*models.Voucher, error)
	GetActive(ctx context.Context) ([]models.Voucher, error)
	Update(ctx context.Context, voucher *models.Voucher) error
}

// FavouriteRepository interface for PostgreSQL favourite operations
type FavouriteRepository interface {
	Create(ctx context.Context, favourite *models.Favourite) error
	Delete(ctx context.Context, userID uuid.UUID, productID int) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Favourite, error)
	Exists(ctx context.Context, userID uuid.UUID, productID int) (bool, error)
}

// LoyaltyRepository interface for PostgreSQL stamp-card operations
type LoyaltyRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.LoyaltyCard, error)
	Create(ctx context.Context, card *models.LoyaltyCard) error
	Update(ctx context.Context, card *models.LoyaltyCard) error
}

// ProductRepository interface for MongoDB catalog operations
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	GetByProductID(ctx context.Context, productID int) (*models.Product, error)
	GetAll(ctx context.Context, category string, limit, offset int) ([]models.Product, error)
	GetFeatured(ctx context.Context) ([]models.Product, error)
	Search(ctx context.Context, query string, limit, offset int) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProductCategoryRepository interface for MongoDB category operations
type ProductCategoryRepository interface {
	Create(ctx context.Context, category *models.ProductCategory) error
	GetAll(ctx context.Context) ([]models.ProductCategory, error)
	GetBySlug(ctx context.Context, slug string) (*models.ProductCategory, error)
}
