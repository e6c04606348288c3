package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"github.com/medina-atelier/admin-api/services"
	"go.uber.org/zap"
)

// Stats is the dashboard aggregation surface used by the controller.
type Stats interface {
	Dashboard(ctx context.Context) (*services.DashboardStats, error)
}

type StatsController struct {
	service Stats
}

func NewStatsController(service Stats) *StatsController {
	return &StatsController{service: service}
}

// GetStats returns the dashboard landing page aggregates.
func (ctrl *StatsController) GetStats(c *gin.Context) {
	stats, err := ctrl.service.Dashboard(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to compute dashboard stats", zap.Error(err))
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
