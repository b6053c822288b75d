package services

import (
	"context"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	"github.com/latadairy/dairy_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// SaleSvcFacade defines the daily (credit) sale operations exposed to
// handlers. Create, payment amendment and deletion also reconcile the owning
// customer's outstanding balance.
type SaleSvcFacade interface {
	CreateDailySale(ctx context.Context, req dto.CreateDailySaleRequest) (*domain.DailySale, error)
	GetDailySaleByID(ctx context.Context, saleID string) (*domain.DailySale, error)
	ListDailySales(ctx context.Context, params dto.ListDailySalesParams) ([]domain.DailySale, error)
	UpdateSalePayment(ctx context.Context, saleID string, paidAmount decimal.Decimal) (*domain.DailySale, error)
	DeleteDailySale(ctx context.Context, saleID string) error
}

// GuestSaleSvcFacade defines the walk-in sale operations exposed to handlers.
type GuestSaleSvcFacade interface {
	CreateGuestSale(ctx context.Context, req dto.CreateGuestSaleRequest) (*domain.GuestSale, error)
	ListGuestSales(ctx context.Context, date string) ([]domain.GuestSale, error)
}
