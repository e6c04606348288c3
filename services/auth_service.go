package services

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"golang.org/x/crypto/bcrypt"
)

// SessionTTL matches the dashboard session lifetime.
const SessionTTL = 72 * time.Hour

// AuthService issues admin session tokens. Credentials come from
// configuration: the admin email and a bcrypt hash of the password.
type AuthService struct {
	adminEmail   string
	passwordHash []byte
	jwtSecret    []byte
}

func NewAuthService(adminEmail, passwordHash string, jwtSecret []byte) *AuthService {
	return &AuthService{
		adminEmail:   adminEmail,
		passwordHash: []byte(passwordHash),
		jwtSecret:    jwtSecret,
	}
}

// Login verifies the credentials and returns a signed session token.
func (s *AuthService) Login(email, password string) (string, error) {
	if email != s.adminEmail {
		return "", httperr.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", httperr.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   "admin",
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
