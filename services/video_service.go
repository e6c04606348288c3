package services

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/medina-atelier/admin-api/models"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"github.com/medina-atelier/admin-api/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MaxVideoSize is the upload ceiling for the homepage cover video.
const MaxVideoSize = 10 << 20 // 10MB

// VideoService manages the singleton homepage cover video.
type VideoService struct {
	videos repository.VideoRepository
}

func NewVideoService(videos repository.VideoRepository) *VideoService {
	return &VideoService{videos: videos}
}

// Replace swaps the stored cover video for the uploaded one. The delete and
// insert are two separate operations; a reader in between observes no video.
func (s *VideoService) Replace(ctx context.Context, data []byte, contentType string) (*models.CoverVideo, error) {
	if len(data) > MaxVideoSize {
		return nil, httperr.ErrPayloadTooLarge
	}
	if len(data) == 0 {
		return nil, httperr.Wrap(httperr.ErrInvalidInput, errors.New("no video provided"))
	}

	if err := s.videos.DeleteAll(ctx); err != nil {
		return nil, err
	}

	video := &models.CoverVideo{
		ID:          primitive.NewObjectID(),
		Data:        base64.StdEncoding.EncodeToString(data),
		ContentType: contentType,
	}
	if err := s.videos.Insert(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// Get returns the stored cover video, or ErrNotFound when none exists.
func (s *VideoService) Get(ctx context.Context) (*models.CoverVideo, error) {
	video, err := s.videos.FindFirst(ctx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return video, nil
}
