package repositories

import (
	"context"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-only aggregation queries behind the
// dashboard. All methods are pure reads; no mutation.
type ReportingRepository interface {
	// DayTotals returns combined revenue and transaction count across daily
	// and guest sales for one calendar day.
	DayTotals(ctx context.Context, date string) (decimal.Decimal, int, error)

	// WindowTotals returns combined revenue and transaction count across
	// daily and guest sales with date in [start, end).
	WindowTotals(ctx context.Context, start, end string) (decimal.Decimal, int, error)

	// TotalOutstanding sums outstanding_balance over all customers, active
	// and inactive.
	TotalOutstanding(ctx context.Context) (decimal.Decimal, error)

	CountActiveCustomers(ctx context.Context) (int, error)
	CountActiveProducts(ctx context.Context) (int, error)

	// DailyTotalsSeries returns one point per calendar day that has activity
	// in [start, end], dates ascending. Days without sales are absent; the
	// service fills them with zeroes.
	DailyTotalsSeries(ctx context.Context, start, end string) ([]domain.ChartPoint, error)

	// TopCustomers ranks customers by daily sale revenue with date in
	// [start, end), descending, ties broken by customer ID.
	TopCustomers(ctx context.Context, start, end string, limit int) ([]domain.CustomerRanking, error)

	// TopProducts ranks products by item revenue over daily sales with date
	// in [start, end), descending, ties broken by product ID.
	TopProducts(ctx context.Context, start, end string, limit int) ([]domain.ProductRanking, error)
}
