package services

import (
	"context"
	"errors"
	"time"

	"github.com/medina-atelier/admin-api/models"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"github.com/medina-atelier/admin-api/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Inventory is the stock-adjustment dependency of the order lifecycle.
type Inventory interface {
	DecrementStock(ctx context.Context, productID primitive.ObjectID, amount int) error
}

// OrderService owns the order lifecycle and its inventory side effect.
type OrderService struct {
	orders    repository.OrderRepository
	users     repository.UserRepository
	inventory Inventory
}

func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, inventory Inventory) *OrderService {
	return &OrderService{orders: orders, users: users, inventory: inventory}
}

// CreateOrderInput is the checkout payload. Exactly one of UserID or
// GuestInfo must be populated, matching the Guest flag.
type CreateOrderInput struct {
	UserID        string
	Guest         bool
	GuestInfo     *models.GuestInfo
	Items         []models.OrderItem
	Total         float64
	Shipping      float64
	PaymentMethod string
}

// Create inserts a new order with a generated order number and the default
// pending status.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, httperr.Wrap(httperr.ErrInvalidInput, errors.New("order has no items"))
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:            primitive.NewObjectID(),
		OrderNumber:   models.GenerateOrderNumber(now),
		Guest:         input.Guest,
		Items:         input.Items,
		Total:         input.Total,
		Shipping:      input.Shipping,
		PaymentMethod: input.PaymentMethod,
		Status:        models.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if input.Guest {
		if input.GuestInfo == nil || input.UserID != "" {
			return nil, httperr.Wrap(httperr.ErrInvalidInput, errors.New("guest order requires guestInfo and no userId"))
		}
		order.GuestInfo = input.GuestInfo
	} else {
		userID, err := primitive.ObjectIDFromHex(input.UserID)
		if err != nil || input.GuestInfo != nil {
			return nil, httperr.Wrap(httperr.ErrInvalidInput, errors.New("registered order requires a valid userId and no guestInfo"))
		}
		order.UserID = userID
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus persists the new status and returns the updated order. Every
// successful status write decrements the first line item's product stock by
// one, whatever the target status and whatever the item quantities.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	if !models.IsValidStatus(status) {
		return nil, httperr.ErrInvalidStatus
	}

	order, err := s.orders.UpdateStatus(ctx, id, status)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(order.Items) > 0 {
		productID := order.Items[0].ProductID
		if err := s.inventory.DecrementStock(ctx, productID, 1); err != nil {
			zap.L().Warn("Stock decrement failed after status update",
				zap.String("order_id", id.Hex()),
				zap.String("product_id", productID.Hex()),
				zap.Error(err),
			)
		}
	}

	return order, nil
}

// Delete removes the order. A missing id succeeds silently and returns a nil
// order. Inventory is never reversed on delete.
func (s *OrderService) Delete(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return s.orders.Delete(ctx, id)
}

// List returns orders newest-first, each enriched with the referenced user's
// contact details. A limit of 0 returns everything.
func (s *OrderService) List(ctx context.Context, limit int64) ([]models.OrderWithUser, error) {
	orders, err := s.orders.List(ctx, false, limit)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.OrderWithUser, 0, len(orders))
	for _, order := range orders {
		contact := models.OrderContact{}
		if !order.UserID.IsZero() {
			user, err := s.users.FindByID(ctx, order.UserID)
			if err == nil {
				contact = models.OrderContact{
					FirstName: user.FirstName,
					LastName:  user.LastName,
					Email:     user.Email,
					Phone:     user.Phone,
					Address:   user.Address,
				}
			} else if !errors.Is(err, mongo.ErrNoDocuments) {
				zap.L().Warn("User lookup failed for order",
					zap.String("order_id", order.ID.Hex()), zap.Error(err))
			}
		}
		enriched = append(enriched, models.OrderWithUser{Order: order, User: contact})
	}
	return enriched, nil
}

// ListGuest returns guest orders newest-first with the embedded guest contact
// details surfaced as the user block.
func (s *OrderService) ListGuest(ctx context.Context, limit int64) ([]models.OrderWithUser, error) {
	orders, err := s.orders.List(ctx, true, limit)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.OrderWithUser, 0, len(orders))
	for _, order := range orders {
		contact := models.OrderContact{}
		if order.GuestInfo != nil {
			contact = models.OrderContact{
				Name:    order.GuestInfo.Name,
				Email:   order.GuestInfo.Email,
				Phone:   order.GuestInfo.Phone,
				Address: order.GuestInfo.Address,
			}
		}
		enriched = append(enriched, models.OrderWithUser{Order: order, User: contact})
	}
	return enriched, nil
}
