package services

import (
	"context"

	"github.com/medina-atelier/admin-api/models"
	"github.com/medina-atelier/admin-api/repository"
)

// DashboardStats is the aggregate view shown on the dashboard landing page.
type DashboardStats struct {
	TotalOrders   int64          `json:"totalOrders"`
	TotalUsers    int64          `json:"totalUsers"`
	TotalProducts int64          `json:"totalProducts"`
	TotalRevenue  float64        `json:"totalRevenue"`
	RecentOrders  []models.Order `json:"recentOrders"`
}

// StatsService aggregates counts and revenue across all collections.
type StatsService struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	products repository.ProductRepository
}

func NewStatsService(orders repository.OrderRepository, users repository.UserRepository, products repository.ProductRepository) *StatsService {
	return &StatsService{orders: orders, users: users, products: products}
}

func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.orders.SumTotals(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.orders.List(ctx, false, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalOrders:   totalOrders,
		TotalUsers:    totalUsers,
		TotalProducts: totalProducts,
		TotalRevenue:  revenue,
		RecentOrders:  recent,
	}, nil
}
