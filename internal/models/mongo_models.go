package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product model - MongoDB (flexible catalog data)
//
// ProductID is the small integer menu key the mobile client and the cart
// ledger use; the ObjectID is a storage concern only.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID   int                `bson:"product_id" json:"product_id"`
	CategoryID  primitive.ObjectID `bson:"category_id,omitempty" json:"category_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Ingredients string             `bson:"ingredients" json:"ingredients"`
	Price       float64            `bson:"price" json:"price"`
	ImageUrl    string             `bson:"image_url" json:"image_url"`
	Category    string             `bson:"category" json:"category"` // iced, hot, pastry, frappe
	IsAvailable bool               `bson:"is_available" json:"is_available"`
	IsFeatured  bool               `bson:"is_featured" json:"is_featured"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// ProductCategory model - MongoDB
type ProductCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"` // iced, hot, pastry, frappe
	SortOrder int                `bson:"sort_order" json:"sort_order"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
