package services

import (
	"context"
	"errors"

	"github.com/medina-atelier/admin-api/models"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"github.com/medina-atelier/admin-api/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserService handles customer CRUD for the dashboard.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserInput carries the full profile; all seven fields are written
// unconditionally.
type UpdateUserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, input UpdateUserInput) (*models.User, error) {
	fields := bson.M{
		"firstName": input.FirstName,
		"lastName":  input.LastName,
		"email":     input.Email,
		"phone":     input.Phone,
		"address":   input.Address,
		"city":      input.City,
		"country":   input.Country,
	}

	user, err := s.users.Update(ctx, id, fields)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user. A missing id succeeds silently with a nil result.
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.Delete(ctx, id)
}
