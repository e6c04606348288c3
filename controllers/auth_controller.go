package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medina-atelier/admin-api/middleware"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"github.com/medina-atelier/admin-api/services"
	"go.uber.org/zap"
)

// Authenticator is the session-issuing surface used by the controller.
type Authenticator interface {
	Login(email, password string) (string, error)
}

type AuthController struct {
	service Authenticator
}

func NewAuthController(service Authenticator) *AuthController {
	return &AuthController{service: service}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies admin credentials and sets the session cookie.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	token, err := ctrl.service.Login(req.Email, req.Password)
	if err != nil {
		zap.L().Warn("Admin login failed", zap.String("email", req.Email))
		httperr.Respond(c, err)
		return
	}

	maxAge := int(services.SessionTTL.Seconds())
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)

	zap.L().Info("Admin logged in", zap.String("email", req.Email))
	c.JSON(http.StatusOK, gin.H{"token": token})
}
