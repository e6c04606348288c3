package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product categories offered by the shop.
var ProductCategories = []string{
	"djellabas-femme",
	"djellabas-homme",
	"djellabas-enfant",
	"caftans",
	"accessoires",
}

// IsValidCategory reports whether c is a known product category.
func IsValidCategory(c string) bool {
	for _, cat := range ProductCategories {
		if cat == c {
			return true
		}
	}
	return false
}

// ProductDetails holds the descriptive attributes shown on the product page.
type ProductDetails struct {
	Material string   `json:"material,omitempty" bson:"material,omitempty"`
	Origin   string   `json:"origin" bson:"origin"`
	Care     string   `json:"care,omitempty" bson:"care,omitempty"`
	Sizes    []string `json:"sizes" bson:"sizes"`
}

// Product is a catalog entry. Image is stored inline as a base64 data URI.
// Stock is expected to stay non-negative but nothing at the storage layer
// enforces a floor.
type Product struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Price       float64            `json:"price" bson:"price"`
	Image       string             `json:"image" bson:"image"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"`
	Details     ProductDetails     `json:"details" bson:"details"`
	Discount    *float64           `json:"discount,omitempty" bson:"discount,omitempty"`
	Stock       int                `json:"stock" bson:"stock"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
