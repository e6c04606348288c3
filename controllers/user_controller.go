package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medina-atelier/admin-api/models"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"github.com/medina-atelier/admin-api/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Identity is the user service surface used by the controller.
type Identity interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, input services.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type UserController struct {
	service Identity
}

func NewUserController(service Identity) *UserController {
	return &UserController{service: service}
}

// GetUsers lists all registered customers.
func (ctrl *UserController) GetUsers(c *gin.Context) {
	users, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list users", zap.Error(err))
		httperr.Respond(c, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID returns a single customer.
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	user, err := ctrl.service.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser overwrites the customer's profile fields.
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	var input services.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	user, err := ctrl.service.Update(c.Request.Context(), id, input)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes the customer. A missing id returns a null body with a
// 200, matching the dashboard's expectations.
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	user, err := ctrl.service.Delete(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to delete user", zap.String("user_id", id.Hex()), zap.Error(err))
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
