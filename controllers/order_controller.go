package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/medina-atelier/admin-api/models"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"github.com/medina-atelier/admin-api/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// OrderLifecycle is the order service surface used by the controller.
type OrderLifecycle interface {
	Create(ctx context.Context, input services.CreateOrderInput) (*models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	List(ctx context.Context, limit int64) ([]models.OrderWithUser, error)
	ListGuest(ctx context.Context, limit int64) ([]models.OrderWithUser, error)
}

type OrderController struct {
	service OrderLifecycle
}

func NewOrderController(service OrderLifecycle) *OrderController {
	return &OrderController{service: service}
}

// parseLimit reads the optional ?limit=N query; 0 means no limit.
func parseLimit(c *gin.Context) int64 {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// GetOrders lists all orders newest-first, enriched with user details.
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	orders, err := ctrl.service.List(c.Request.Context(), parseLimit(c))
	if err != nil {
		zap.L().Error("Failed to list orders", zap.Error(err))
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetGuestOrders lists guest orders with their embedded contact details.
func (ctrl *OrderController) GetGuestOrders(c *gin.Context) {
	orders, err := ctrl.service.ListGuest(c.Request.Context(), parseLimit(c))
	if err != nil {
		zap.L().Error("Failed to list guest orders", zap.Error(err))
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type createOrderRequest struct {
	UserID        string             `json:"userId"`
	Guest         bool               `json:"guest"`
	GuestInfo     *models.GuestInfo  `json:"guestInfo"`
	Items         []models.OrderItem `json:"items" binding:"required"`
	Total         float64            `json:"total"`
	Shipping      float64            `json:"shipping"`
	PaymentMethod string             `json:"paymentMethod"`
}

// CreateOrder ingests a checkout into the orders collection.
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	order, err := ctrl.service.Create(c.Request.Context(), services.CreateOrderInput{
		UserID:        req.UserID,
		Guest:         req.Guest,
		GuestInfo:     req.GuestInfo,
		Items:         req.Items,
		Total:         req.Total,
		Shipping:      req.Shipping,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	zap.L().Info("Order created",
		zap.String("order_id", order.ID.Hex()),
		zap.String("order_number", order.OrderNumber),
		zap.Bool("guest", order.Guest),
	)
	c.JSON(http.StatusCreated, order)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus writes the new status and returns the updated order.
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	order, err := ctrl.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	zap.L().Info("Order status updated",
		zap.String("order_id", id.Hex()),
		zap.String("status", req.Status),
	)
	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes the order. Deleting a missing order returns a null
// body with a 200, matching the dashboard's expectations.
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	order, err := ctrl.service.Delete(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to delete order", zap.String("order_id", id.Hex()), zap.Error(err))
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
