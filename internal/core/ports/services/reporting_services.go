package services

import (
	"context"

	"github.com/latadairy/dairy_backend/internal/core/domain"
)

// ReportingSvcFacade defines the read-only dashboard aggregations exposed to
// handlers. Nothing here mutates state.
type ReportingSvcFacade interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)

	// GetSalesChart returns one point per calendar day from today-days to
	// today inclusive, oldest first. days=0 yields a single point for today.
	GetSalesChart(ctx context.Context, days int) ([]domain.ChartPoint, error)

	GetTopCustomers(ctx context.Context, limit int) ([]domain.CustomerRanking, error)
	GetTopProducts(ctx context.Context, limit int) ([]domain.ProductRanking, error)
}
