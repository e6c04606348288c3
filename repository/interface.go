package repository

import (
	"context"

	"github.com/medina-atelier/admin-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderRepository defines the order data access used by the service layer.
type OrderRepository interface {
	List(ctx context.Context, guestOnly bool, limit int64) ([]models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	// UpdateStatus persists the status and returns the updated order.
	// Returns mongo.ErrNoDocuments when the id does not resolve.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error)
	// Delete removes the order and returns it, or (nil, nil) when the id
	// does not resolve.
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Count(ctx context.Context) (int64, error)
	SumTotals(ctx context.Context) (float64, error)
}

// ProductRepository defines catalog and inventory data access.
type ProductRepository interface {
	Find(ctx context.Context, limit, skip int64) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, product *models.Product) error
	// Update applies a $set of the given fields; returns the matched count.
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (int64, error)
	// Delete removes the product and returns it, or (nil, nil) when the id
	// does not resolve.
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	// IncrementStock applies an atomic $inc of delta to the product's stock.
	// A missing id is a silent no-op.
	IncrementStock(ctx context.Context, id primitive.ObjectID, delta int) error
	// SetPrice overwrites the price field; returns the matched count.
	SetPrice(ctx context.Context, id primitive.ObjectID, price float64) (int64, error)
}

// UserRepository defines customer data access.
type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// Update overwrites the profile fields and returns the updated user.
	// Returns mongo.ErrNoDocuments when the id does not resolve.
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error)
	// Delete removes the user and returns it, or (nil, nil) when missing.
	Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

// VideoRepository defines access to the singleton cover video collection.
type VideoRepository interface {
	DeleteAll(ctx context.Context) error
	Insert(ctx context.Context, video *models.CoverVideo) error
	// FindFirst returns the first stored video. Returns mongo.ErrNoDocuments
	// when the collection is empty.
	FindFirst(ctx context.Context) (*models.CoverVideo, error)
}
