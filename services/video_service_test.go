package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/medina-atelier/admin-api/models"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeVideoRepo struct {
	videos     []*models.CoverVideo
	deleteAlls int
}

func (f *fakeVideoRepo) DeleteAll(ctx context.Context) error {
	f.deleteAlls++
	f.videos = nil
	return nil
}

func (f *fakeVideoRepo) Insert(ctx context.Context, video *models.CoverVideo) error {
	f.videos = append(f.videos, video)
	return nil
}

func (f *fakeVideoRepo) FindFirst(ctx context.Context) (*models.CoverVideo, error) {
	if len(f.videos) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return f.videos[0], nil
}

func TestReplaceRejectsOversizePayload(t *testing.T) {
	repo := &fakeVideoRepo{}
	svc := NewVideoService(repo)

	oversize := bytes.Repeat([]byte{0xab}, MaxVideoSize+1)
	_, err := svc.Replace(context.Background(), oversize, "video/mp4")
	assert.ErrorIs(t, err, httperr.ErrPayloadTooLarge)
	assert.Zero(t, repo.deleteAlls, "an oversize upload must not touch the stored video")
}

func TestReplaceRejectsEmptyPayload(t *testing.T) {
	svc := NewVideoService(&fakeVideoRepo{})

	_, err := svc.Replace(context.Background(), nil, "video/mp4")
	assert.ErrorIs(t, err, httperr.ErrInvalidInput)
}

func TestReplaceThenGetRoundTrips(t *testing.T) {
	repo := &fakeVideoRepo{}
	svc := NewVideoService(repo)

	payload := []byte("not really an mp4, but bytes are bytes")
	_, err := svc.Replace(context.Background(), payload, "video/mp4")
	require.NoError(t, err)

	video, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "video/mp4", video.ContentType)

	decoded, err := base64.StdEncoding.DecodeString(video.Data)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)

	// Replace always leaves exactly one document behind.
	_, err = svc.Replace(context.Background(), []byte("second upload"), "video/webm")
	require.NoError(t, err)
	assert.Len(t, repo.videos, 1)
	assert.Equal(t, 2, repo.deleteAlls)
}

func TestGetWithoutVideo(t *testing.T) {
	svc := NewVideoService(&fakeVideoRepo{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}
