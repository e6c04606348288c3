package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medina-atelier/admin-api/models"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"go.uber.org/zap"
)

// VideoManager is the cover-video service surface used by the controller.
type VideoManager interface {
	Replace(ctx context.Context, data []byte, contentType string) (*models.CoverVideo, error)
	Get(ctx context.Context) (*models.CoverVideo, error)
}

type SettingsController struct {
	service VideoManager
}

func NewSettingsController(service VideoManager) *SettingsController {
	return &SettingsController{service: service}
}

// GetCoverVideo returns the stored homepage cover video.
func (ctrl *SettingsController) GetCoverVideo(c *gin.Context) {
	video, err := ctrl.service.Get(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

// UploadCoverVideo replaces the homepage cover video from a multipart form.
func (ctrl *SettingsController) UploadCoverVideo(c *gin.Context) {
	fileHeader, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No video provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		zap.L().Error("Failed to open uploaded video", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read video"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		zap.L().Error("Failed to read uploaded video", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read video"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	video, err := ctrl.service.Replace(c.Request.Context(), data, contentType)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	zap.L().Info("Cover video replaced",
		zap.String("content_type", contentType),
		zap.Int("size", len(data)),
	)
	c.JSON(http.StatusOK, gin.H{"success": true, "contentType": video.ContentType})
}
