package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/medina-atelier/admin-api/models"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"github.com/medina-atelier/admin-api/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogService handles product CRUD for the dashboard.
type CatalogService struct {
	products repository.ProductRepository
}

func NewCatalogService(products repository.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// ProductPage is one page of the catalog listing.
type ProductPage struct {
	Products   []models.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// List returns a page of products, newest-first. No upper bound is enforced
// on the page size.
func (s *CatalogService) List(ctx context.Context, page, limit int) (*ProductPage, error) {
	skip := int64((page - 1) * limit)

	products, err := s.products.Find(ctx, int64(limit), skip)
	if err != nil {
		return nil, err
	}

	total, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Products:   products,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *CatalogService) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// CreateProductInput is the multipart form payload for product creation.
type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	Category    string
	Material    string
	Origin      string
	Care        string
	Sizes       []string
	Discount    *float64
	Stock       int

	// Raw image bytes as uploaded; stored inline as a data URI. Transcoding
	// is not this service's concern.
	ImageData        []byte
	ImageContentType string
}

// Create inserts a new catalog entry.
func (s *CatalogService) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	image := ""
	if len(input.ImageData) > 0 {
		image = fmt.Sprintf("data:%s;base64,%s",
			input.ImageContentType, base64.StdEncoding.EncodeToString(input.ImageData))
	}

	now := time.Now().UTC()
	product := &models.Product{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Price:       input.Price,
		Image:       image,
		Description: input.Description,
		Category:    input.Category,
		Details: models.ProductDetails{
			Material: input.Material,
			Origin:   input.Origin,
			Care:     input.Care,
			Sizes:    input.Sizes,
		},
		Discount:  input.Discount,
		Stock:     input.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update applies a partial update. Only non-empty fields overwrite existing
// values: an empty string or a zero number is indistinguishable from "not
// provided" and never clears a field.
func (s *CatalogService) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Product, error) {
	filtered := bson.M{}
	for key, value := range updates {
		if key == "_id" || key == "createdAt" || key == "updatedAt" {
			continue
		}
		if isEmptyValue(value) {
			continue
		}
		filtered[key] = value
	}

	if len(filtered) > 0 {
		matched, err := s.products.Update(ctx, id, filtered)
		if err != nil {
			return nil, err
		}
		if matched == 0 {
			return nil, httperr.ErrNotFound
		}
	}

	return s.Get(ctx, id)
}

// Delete removes a product permanently.
func (s *CatalogService) Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, err := s.products.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, httperr.ErrNotFound
	}
	return product, nil
}

// isEmptyValue reports whether a decoded JSON value counts as "not provided"
// for the partial-update policy.
func isEmptyValue(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case float64:
		return value == 0
	case int:
		return value == 0
	case int64:
		return value == 0
	case bool:
		return !value
	case []interface{}:
		return len(value) == 0
	case map[string]interface{}:
		return len(value) == 0
	default:
		return false
	}
}
