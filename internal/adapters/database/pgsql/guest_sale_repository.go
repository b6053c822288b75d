package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	portsrepo "github.com/latadairy/dairy_backend/internal/core/ports/repositories"
	"github.com/latadairy/dairy_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGuestSaleRepository struct {
	pool *pgxpool.Pool
}

// NewPgxGuestSaleRepository creates a new repository for walk-in sale data.
func NewPgxGuestSaleRepository(pool *pgxpool.Pool) portsrepo.GuestSaleRepository {
	return &PgxGuestSaleRepository{pool: pool}
}

var _ portsrepo.GuestSaleRepository = (*PgxGuestSaleRepository)(nil)

// SaveGuestSale inserts the sale with its items in one transaction. Guest
// sales never touch customer balances.
func (r *PgxGuestSaleRepository) SaveGuestSale(ctx context.Context, sale domain.GuestSale) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	saleQuery := `
		INSERT INTO guest_sales (sale_id, guest_name, guest_phone, sale_date, total_amount, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, saleQuery,
		sale.SaleID,
		sale.GuestName,
		sale.GuestPhone,
		sale.Date,
		sale.TotalAmount,
		sale.PaymentMethod,
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert guest sale %s: %w", sale.SaleID, err)
	}

	batch := &pgx.Batch{}
	queueSaleItems(batch, sale.SaleID, models.GuestKind, sale.Items)
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute item batch for guest sale %s: %w", sale.SaleID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for guest sale %s: %w", sale.SaleID, err)
	}

	return nil
}

func (r *PgxGuestSaleRepository) FindGuestSales(ctx context.Context, date string) ([]domain.GuestSale, error) {
	query := `
		SELECT sale_id, guest_name, guest_phone, sale_date, total_amount, payment_method, created_at
		FROM guest_sales
	`
	args := []any{}
	if date != "" {
		query += ` WHERE sale_date = $1`
		args = append(args, date)
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query guest sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.GuestSale{}
	saleIDs := []string{}
	for rows.Next() {
		var m models.GuestSale
		var saleDate time.Time
		if err := rows.Scan(
			&m.SaleID,
			&m.GuestName,
			&m.GuestPhone,
			&saleDate,
			&m.TotalAmount,
			&m.PaymentMethod,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan guest sale row: %w", err)
		}
		sales = append(sales, domain.GuestSale{
			SaleID:        m.SaleID,
			GuestName:     m.GuestName,
			GuestPhone:    m.GuestPhone,
			Date:          saleDate.Format(domain.DateLayout),
			TotalAmount:   m.TotalAmount,
			PaymentMethod: m.PaymentMethod,
			CreatedAt:     m.CreatedAt,
		})
		saleIDs = append(saleIDs, m.SaleID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating guest sale rows: %w", err)
	}

	if len(sales) == 0 {
		return sales, nil
	}

	itemsBySale, err := loadSaleItems(ctx, r.pool, saleIDs, models.GuestKind)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		sales[i].Items = itemsBySale[sales[i].SaleID]
	}

	return sales, nil
}
