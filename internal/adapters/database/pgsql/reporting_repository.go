package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	portsrepo "github.com/latadairy/dairy_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// NewPgxReportingRepository creates a new repository for dashboard
// aggregation queries.
func NewPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) DayTotals(ctx context.Context, date string) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM (
			SELECT total_amount FROM daily_sales WHERE sale_date = $1
			UNION ALL
			SELECT total_amount FROM guest_sales WHERE sale_date = $1
		) combined;
	`
	var revenue decimal.Decimal
	var count int64
	if err := r.pool.QueryRow(ctx, query, date).Scan(&revenue, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to query day totals for %s: %w", date, err)
	}
	return revenue, int(count), nil
}

func (r *PgxReportingRepository) WindowTotals(ctx context.Context, start, end string) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM (
			SELECT total_amount FROM daily_sales WHERE sale_date >= $1 AND sale_date < $2
			UNION ALL
			SELECT total_amount FROM guest_sales WHERE sale_date >= $1 AND sale_date < $2
		) combined;
	`
	var revenue decimal.Decimal
	var count int64
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&revenue, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to query window totals [%s, %s): %w", start, end, err)
	}
	return revenue, int(count), nil
}

// TotalOutstanding sums over all customers, active and inactive: the money is
// owed either way.
func (r *PgxReportingRepository) TotalOutstanding(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(outstanding_balance), 0) FROM customers;`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query total outstanding balance: %w", err)
	}
	return total, nil
}

func (r *PgxReportingRepository) CountActiveCustomers(ctx context.Context) (int, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers WHERE is_active = TRUE;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active customers: %w", err)
	}
	return int(count), nil
}

func (r *PgxReportingRepository) CountActiveProducts(ctx context.Context) (int, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active = TRUE;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active products: %w", err)
	}
	return int(count), nil
}

func (r *PgxReportingRepository) DailyTotalsSeries(ctx context.Context, start, end string) ([]domain.ChartPoint, error) {
	query := `
		SELECT sale_date, SUM(total_amount), COUNT(*)
		FROM (
			SELECT sale_date, total_amount FROM daily_sales WHERE sale_date >= $1 AND sale_date <= $2
			UNION ALL
			SELECT sale_date, total_amount FROM guest_sales WHERE sale_date >= $1 AND sale_date <= $2
		) combined
		GROUP BY sale_date
		ORDER BY sale_date;
	`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily totals series [%s, %s]: %w", start, end, err)
	}
	defer rows.Close()

	points := []domain.ChartPoint{}
	for rows.Next() {
		var saleDate time.Time
		var revenue decimal.Decimal
		var count int64
		if err := rows.Scan(&saleDate, &revenue, &count); err != nil {
			return nil, fmt.Errorf("failed to scan daily totals row: %w", err)
		}
		points = append(points, domain.ChartPoint{
			Date:         saleDate.Format(domain.DateLayout),
			Revenue:      revenue,
			Transactions: int(count),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily totals rows: %w", err)
	}

	return points, nil
}

// TopCustomers ranks by revenue with the customer ID as the explicit
// tie-break, keeping the ordering reproducible.
func (r *PgxReportingRepository) TopCustomers(ctx context.Context, start, end string, limit int) ([]domain.CustomerRanking, error) {
	query := `
		SELECT customer_id, MIN(customer_name), SUM(total_amount) AS total_purchases, COUNT(*)
		FROM daily_sales
		WHERE sale_date >= $1 AND sale_date < $2
		GROUP BY customer_id
		ORDER BY total_purchases DESC, customer_id
		LIMIT $3;
	`
	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top customers: %w", err)
	}
	defer rows.Close()

	rankings := []domain.CustomerRanking{}
	for rows.Next() {
		var ranking domain.CustomerRanking
		var count int64
		if err := rows.Scan(&ranking.CustomerID, &ranking.CustomerName, &ranking.TotalPurchases, &count); err != nil {
			return nil, fmt.Errorf("failed to scan top customer row: %w", err)
		}
		ranking.PurchaseCount = int(count)
		rankings = append(rankings, ranking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top customer rows: %w", err)
	}

	return rankings, nil
}

// TopProducts flattens daily sale items and ranks by line revenue, product ID
// as tie-break. Guest sale items are excluded, matching the customer-facing
// ranking's scope.
func (r *PgxReportingRepository) TopProducts(ctx context.Context, start, end string, limit int) ([]domain.ProductRanking, error) {
	query := `
		SELECT i.product_id, MIN(i.product_name), SUM(i.quantity), SUM(i.line_total) AS total_revenue
		FROM sale_items i
		JOIN daily_sales s ON s.sale_id = i.sale_id
		WHERE i.sale_kind = 'DAILY' AND s.sale_date >= $1 AND s.sale_date < $2
		GROUP BY i.product_id
		ORDER BY total_revenue DESC, i.product_id
		LIMIT $3;
	`
	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	defer rows.Close()

	rankings := []domain.ProductRanking{}
	for rows.Next() {
		var ranking domain.ProductRanking
		if err := rows.Scan(&ranking.ProductID, &ranking.ProductName, &ranking.TotalQuantity, &ranking.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan top product row: %w", err)
		}
		rankings = append(rankings, ranking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top product rows: %w", err)
	}

	return rankings, nil
}
