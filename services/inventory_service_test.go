package services

import (
	"context"
	"testing"

	"github.com/medina-atelier/admin-api/models"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeProductRepo mirrors the Mongo update semantics: $inc with no floor,
// updates on missing ids match nothing.
type fakeProductRepo struct {
	products map[primitive.ObjectID]*models.Product
	updates  []bson.M
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[primitive.ObjectID]*models.Product)}
}

func (f *fakeProductRepo) Find(ctx context.Context, limit, skip int64) ([]models.Product, error) {
	var out []models.Product
	var skipped int64
	for _, p := range f.products {
		if skipped < skip {
			skipped++
			continue
		}
		out = append(out, *p)
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (int64, error) {
	f.updates = append(f.updates, updates)
	product, ok := f.products[id]
	if !ok {
		return 0, nil
	}
	if price, ok := updates["price"].(float64); ok {
		product.Price = price
	}
	if name, ok := updates["name"].(string); ok {
		product.Name = name
	}
	if stock, ok := updates["stock"].(float64); ok {
		product.Stock = int(stock)
	}
	return 1, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	delete(f.products, id)
	return product, nil
}

func (f *fakeProductRepo) IncrementStock(ctx context.Context, id primitive.ObjectID, delta int) error {
	if product, ok := f.products[id]; ok {
		product.Stock += delta
	}
	return nil
}

func (f *fakeProductRepo) SetPrice(ctx context.Context, id primitive.ObjectID, price float64) (int64, error) {
	product, ok := f.products[id]
	if !ok {
		return 0, nil
	}
	product.Price = price
	return 1, nil
}

func TestDecrementStockBelowZero(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewInventoryService(repo)

	id := primitive.NewObjectID()
	repo.products[id] = &models.Product{ID: id, Name: "Caftan", Stock: 0}

	err := svc.DecrementStock(context.Background(), id, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, repo.products[id].Stock)
}

func TestDecrementStockMissingProductIsNoOp(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewInventoryService(repo)

	err := svc.DecrementStock(context.Background(), primitive.NewObjectID(), 1)
	assert.NoError(t, err)
}

func TestSetPrice(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewInventoryService(repo)

	id := primitive.NewObjectID()
	repo.products[id] = &models.Product{ID: id, Name: "Djellaba", Price: 300}

	product, err := svc.SetPrice(context.Background(), id, 250)
	require.NoError(t, err)
	assert.Equal(t, 250.0, product.Price)

	// Negative prices are not rejected at this layer.
	product, err = svc.SetPrice(context.Background(), id, -10)
	require.NoError(t, err)
	assert.Equal(t, -10.0, product.Price)
}

func TestSetPriceNotFound(t *testing.T) {
	svc := NewInventoryService(newFakeProductRepo())

	_, err := svc.SetPrice(context.Background(), primitive.NewObjectID(), 100)
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}
