package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/latadairy/dairy_backend/internal/apperrors"
	"github.com/latadairy/dairy_backend/internal/core/domain"
	portsrepo "github.com/latadairy/dairy_backend/internal/core/ports/repositories"
	"github.com/latadairy/dairy_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBillingRepository struct {
	pool *pgxpool.Pool
}

// NewPgxBillingRepository creates a new repository for monthly bill snapshots.
func NewPgxBillingRepository(pool *pgxpool.Pool) portsrepo.BillingRepository {
	return &PgxBillingRepository{pool: pool}
}

var _ portsrepo.BillingRepository = (*PgxBillingRepository)(nil)

const billColumns = `bill_id, customer_id, customer_name, month, year, total_sales, total_paid, balance_due, sales_count, generated_at, email_sent`

func toDomainBill(m models.MonthlyBill) domain.MonthlyBill {
	return domain.MonthlyBill{
		BillID:       m.BillID,
		CustomerID:   m.CustomerID,
		CustomerName: m.CustomerName,
		Month:        m.Month,
		Year:         m.Year,
		TotalSales:   m.TotalSales,
		TotalPaid:    m.TotalPaid,
		BalanceDue:   m.BalanceDue,
		SalesCount:   m.SalesCount,
		GeneratedAt:  m.GeneratedAt,
		EmailSent:    m.EmailSent,
	}
}

func scanBillRow(row pgx.Row) (*domain.MonthlyBill, error) {
	var m models.MonthlyBill
	if err := row.Scan(
		&m.BillID,
		&m.CustomerID,
		&m.CustomerName,
		&m.Month,
		&m.Year,
		&m.TotalSales,
		&m.TotalPaid,
		&m.BalanceDue,
		&m.SalesCount,
		&m.GeneratedAt,
		&m.EmailSent,
	); err != nil {
		return nil, err
	}
	bill := toDomainBill(m)
	return &bill, nil
}

func (r *PgxBillingRepository) queryBills(ctx context.Context, query string, args ...any) ([]domain.MonthlyBill, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	bills := []domain.MonthlyBill{}
	for rows.Next() {
		bill, err := scanBillRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		bills = append(bills, *bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill rows: %w", err)
	}

	return bills, nil
}

func (r *PgxBillingRepository) FindBillsByPeriod(ctx context.Context, month, year int) ([]domain.MonthlyBill, error) {
	query := `SELECT ` + billColumns + ` FROM monthly_bills WHERE month = $1 AND year = $2 ORDER BY customer_name;`
	return r.queryBills(ctx, query, month, year)
}

func (r *PgxBillingRepository) FindBillsByCustomer(ctx context.Context, customerID string) ([]domain.MonthlyBill, error) {
	query := `SELECT ` + billColumns + ` FROM monthly_bills WHERE customer_id = $1 ORDER BY year DESC, month DESC;`
	return r.queryBills(ctx, query, customerID)
}

func (r *PgxBillingRepository) FindBillByID(ctx context.Context, billID string) (*domain.MonthlyBill, error) {
	query := `SELECT ` + billColumns + ` FROM monthly_bills WHERE bill_id = $1;`
	bill, err := scanBillRow(r.pool.QueryRow(ctx, query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by ID %s: %w", billID, err)
	}
	return bill, nil
}

// UpsertBill relies on the composite uniqueness constraint instead of a
// check-then-insert, so concurrent generation runs for the same period cannot
// produce duplicate bills. On conflict the stored bill_id survives and
// email_sent resets to false.
func (r *PgxBillingRepository) UpsertBill(ctx context.Context, bill domain.MonthlyBill) (*domain.MonthlyBill, error) {
	query := `
		INSERT INTO monthly_bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE)
		ON CONFLICT ON CONSTRAINT uq_monthly_bills_period DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			total_sales = EXCLUDED.total_sales,
			total_paid = EXCLUDED.total_paid,
			balance_due = EXCLUDED.balance_due,
			sales_count = EXCLUDED.sales_count,
			generated_at = EXCLUDED.generated_at,
			email_sent = FALSE
		RETURNING ` + billColumns + `;
	`
	stored, err := scanBillRow(r.pool.QueryRow(ctx, query,
		bill.BillID,
		bill.CustomerID,
		bill.CustomerName,
		bill.Month,
		bill.Year,
		bill.TotalSales,
		bill.TotalPaid,
		bill.BalanceDue,
		bill.SalesCount,
		bill.GeneratedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert bill for customer %s (%d/%d): %w", bill.CustomerID, bill.Month, bill.Year, err)
	}
	return stored, nil
}

func (r *PgxBillingRepository) MarkEmailSent(ctx context.Context, billID string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE monthly_bills SET email_sent = TRUE WHERE bill_id = $1;`, billID)
	if err != nil {
		return fmt.Errorf("failed to mark bill %s as emailed: %w", billID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
