package repositories

import (
	"context"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DailySaleFilter narrows a daily sale listing. An exact Date takes
// precedence over the StartDate/EndDate range; empty fields are ignored.
type DailySaleFilter struct {
	CustomerID string
	Date       string
	StartDate  string
	EndDate    string
}

// SaleRepository defines the persistence operations for daily (credit) sales.
//
// Every mutating method takes the balance delta to apply to the owning
// customer and executes the sale write and the balance increment in a single
// database transaction.
type SaleRepository interface {
	// SaveDailySale inserts the sale with its items and increments the
	// customer's outstanding balance by balanceDelta atomically. Returns
	// apperrors.ErrNotFound if the customer row does not exist.
	SaveDailySale(ctx context.Context, sale domain.DailySale, balanceDelta decimal.Decimal) error

	FindDailySaleByID(ctx context.Context, saleID string) (*domain.DailySale, error)
	FindDailySales(ctx context.Context, filter DailySaleFilter) ([]domain.DailySale, error)

	// FindSalesInWindow returns the customer's sales with date in [start, end),
	// ordered by date ascending.
	FindSalesInWindow(ctx context.Context, customerID, start, end string) ([]domain.DailySale, error)

	// UpdateSalePayment sets the sale's paid amount and is_paid flag and
	// increments the customer's balance by balanceDelta atomically.
	UpdateSalePayment(ctx context.Context, saleID, customerID string, paidAmount decimal.Decimal, isPaid bool, balanceDelta decimal.Decimal) error

	// DeleteDailySale removes the sale and its items and increments the
	// customer's balance by balanceDelta atomically.
	DeleteDailySale(ctx context.Context, saleID, customerID string, balanceDelta decimal.Decimal) error
}

// GuestSaleRepository defines the persistence operations for walk-in sales.
type GuestSaleRepository interface {
	SaveGuestSale(ctx context.Context, sale domain.GuestSale) error
	// FindGuestSales lists guest sales, optionally filtered to an exact date,
	// newest first.
	FindGuestSales(ctx context.Context, date string) ([]domain.GuestSale, error)
}
