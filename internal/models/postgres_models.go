package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, j)
}

// User model - PostgreSQL (strict, consistent data)
type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name             string     `gorm:"not null" json:"name"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Contact          string     `json:"contact"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	DefaultAddressID *uuid.UUID `gorm:"type:uuid" json:"default_address_id"`
	IsVerified       bool       `gorm:"default:false" json:"is_verified"`
	Status           string     `gorm:"default:active" json:"status"` // active, inactive, suspended
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Address model - PostgreSQL (user delivery addresses)
type Address struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Label        string    `gorm:"default:home" json:"label"` // home, office, other
	AddressLine  string    `gorm:"not null" json:"address_line"`
	Barangay     string    `gorm:"not null" json:"barangay"`
	City         string    `gorm:"default:'Quezon City'" json:"city"`
	ContactName  string    `json:"contact_name"`
	ContactPhone string    `json:"contact_phone"`
	IsDefault    bool      `gorm:"default:false" json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Order model - PostgreSQL (critical transactional data)
type Order struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null" json:"user_id"`
	User            User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status          string     `gorm:"default:Pending" json:"status"`  // Pending, Paid, Preparing, Completed, Cancelled
	OrderType       string     `gorm:"not null" json:"order_type"`     // pickup, delivery
	PaymentMethod   string     `gorm:"not null" json:"payment_method"` // card, cod
	PaymentID       *uuid.UUID `gorm:"type:uuid" json:"payment_id"`
	AddressID       *uuid.UUID `gorm:"type:uuid" json:"address_id"`
	Items           JSONB      `gorm:"type:jsonb" json:"items"`
	Subtotal        float64    `json:"subtotal"`
	FulfillmentFee  float64    `json:"fulfillment_fee"`
	DiscountAmount  float64    `json:"discount_amount"`
	DiscountLabel   string     `json:"discount_label"`
	TotalAmount     float64    `json:"total_amount"`
	CustomerName    string     `json:"customer_name"`
	CustomerContact string     `json:"customer_contact"`
	ShippingDetails JSONB      `gorm:"type:jsonb" json:"shipping_details"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Payment model - PostgreSQL (critical financial data)
type Payment struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null" json:"order_id"`
	Order           Order     `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	UserID          uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Amount          float64   `gorm:"not null" json:"amount"`
	Currency        string    `gorm:"default:php" json:"currency"`
	Method          string    `gorm:"not null" json:"method"`        // card, cod
	Status          string    `gorm:"default:pending" json:"status"` // pending, success, failed
	PaymentIntentID string    `json:"payment_intent_id"`
	CreatedAt       time.Time `json:"created_at"`
	Metadata        JSONB     `gorm:"type:jsonb" json:"metadata"`
}

// Voucher model - PostgreSQL (static promo codes seeded at startup)
type Voucher struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code          string    `gorm:"uniqueIndex;not null" json:"code"`
	Description   string    `json:"description"`
	DiscountType  string    `gorm:"not null" json:"discount_type"` // fixed, percentage
	DiscountValue float64   `gorm:"not null" json:"discount_value"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// Favourite model - PostgreSQL (one row per user/product pair)
type Favourite struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_product" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProductID int       `gorm:"not null;uniqueIndex:idx_user_product" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LoyaltyCard model - PostgreSQL (stamp card, one per user)
type LoyaltyCard struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Stamps     int       `gorm:"default:0" json:"stamps"`
	RewardGoal int       `gorm:"default:10" json:"reward_goal"`
	Tier       string    `gorm:"default:Regular" json:"tier"` // Regular, V.I.P.
	UpdatedAt  time.Time `json:"updated_at"`
	CreatedAt  time.Time `json:"created_at"`
}
