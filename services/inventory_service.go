package services

import (
	"context"
	"errors"

	"github.com/medina-atelier/admin-api/models"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"github.com/medina-atelier/admin-api/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// InventoryService owns product stock adjustments and the quick price edit.
type InventoryService struct {
	products repository.ProductRepository
}

func NewInventoryService(products repository.ProductRepository) *InventoryService {
	return &InventoryService{products: products}
}

// DecrementStock lowers the product's stock by amount via an atomic $inc.
// There is no floor; stock may go negative. An unresolved product id matches
// nothing and is a silent no-op.
func (s *InventoryService) DecrementStock(ctx context.Context, productID primitive.ObjectID, amount int) error {
	return s.products.IncrementStock(ctx, productID, -amount)
}

// SetPrice overwrites the product's price and returns the updated document.
// No sign check is applied at this layer.
func (s *InventoryService) SetPrice(ctx context.Context, productID primitive.ObjectID, price float64) (*models.Product, error) {
	matched, err := s.products.SetPrice(ctx, productID, price)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, httperr.ErrNotFound
	}

	product, err := s.products.FindByID(ctx, productID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}
