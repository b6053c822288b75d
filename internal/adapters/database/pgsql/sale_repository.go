package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/latadairy/dairy_backend/internal/apperrors"
	"github.com/latadairy/dairy_backend/internal/core/domain"
	portsrepo "github.com/latadairy/dairy_backend/internal/core/ports/repositories"
	"github.com/latadairy/dairy_backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxSaleRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSaleRepository creates a new repository for daily sale data.
func NewPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepository {
	return &PgxSaleRepository{pool: pool}
}

var _ portsrepo.SaleRepository = (*PgxSaleRepository)(nil)

const insertSaleItemQuery = `
	INSERT INTO sale_items (item_id, sale_id, sale_kind, position, product_id, product_name, unit, quantity, unit_price, line_total)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

// toModelSaleItems converts the denormalized item snapshots of one sale into
// rows, assigning fresh item IDs and their position within the sale.
func toModelSaleItems(saleID string, kind models.SaleKind, items []domain.SaleItem) []models.SaleItem {
	rows := make([]models.SaleItem, 0, len(items))
	for i, item := range items {
		rows = append(rows, models.SaleItem{
			ItemID:      uuid.NewString(),
			SaleID:      saleID,
			SaleKind:    kind,
			Position:    i,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   item.Price,
			LineTotal:   item.Total,
		})
	}
	return rows
}

func toDomainSaleItem(m models.SaleItem) domain.SaleItem {
	return domain.SaleItem{
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Unit:        m.Unit,
		Quantity:    m.Quantity,
		Price:       m.UnitPrice,
		Total:       m.LineTotal,
	}
}

// queueSaleItems adds one insert per item to the batch, preserving order.
func queueSaleItems(batch *pgx.Batch, saleID string, kind models.SaleKind, items []domain.SaleItem) {
	for _, m := range toModelSaleItems(saleID, kind, items) {
		batch.Queue(insertSaleItemQuery,
			m.ItemID,
			m.SaleID,
			m.SaleKind,
			m.Position,
			m.ProductID,
			m.ProductName,
			m.Unit,
			m.Quantity,
			m.UnitPrice,
			m.LineTotal,
		)
	}
}

// SaveDailySale inserts the sale with its items and applies the balance delta
// to the owning customer inside one database transaction, so a crash between
// the writes cannot leave the balance invariant violated.
func (r *PgxSaleRepository) SaveDailySale(ctx context.Context, sale domain.DailySale, balanceDelta decimal.Decimal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	// The balance increment doubles as the customer existence check.
	tag, err := tx.Exec(ctx,
		`UPDATE customers SET outstanding_balance = outstanding_balance + $1 WHERE customer_id = $2;`,
		balanceDelta, sale.CustomerID,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust balance for customer %s: %w", sale.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	saleQuery := `
		INSERT INTO daily_sales (sale_id, customer_id, customer_name, sale_date, total_amount, paid_amount, is_paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, saleQuery,
		sale.SaleID,
		sale.CustomerID,
		sale.CustomerName,
		sale.Date,
		sale.TotalAmount,
		sale.PaidAmount,
		sale.IsPaid,
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert daily sale %s: %w", sale.SaleID, err)
	}

	batch := &pgx.Batch{}
	queueSaleItems(batch, sale.SaleID, models.DailyKind, sale.Items)
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute item batch for sale %s: %w", sale.SaleID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for sale %s: %w", sale.SaleID, err)
	}

	return nil
}

func (r *PgxSaleRepository) FindDailySaleByID(ctx context.Context, saleID string) (*domain.DailySale, error) {
	query := `
		SELECT sale_id, customer_id, customer_name, sale_date, total_amount, paid_amount, is_paid, created_at
		FROM daily_sales
		WHERE sale_id = $1;
	`
	sale, err := scanDailySaleRow(r.pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find daily sale by ID %s: %w", saleID, err)
	}

	itemsBySale, err := r.loadItems(ctx, []string{sale.SaleID}, models.DailyKind)
	if err != nil {
		return nil, err
	}
	sale.Items = itemsBySale[sale.SaleID]

	return sale, nil
}

func (r *PgxSaleRepository) FindDailySales(ctx context.Context, filter portsrepo.DailySaleFilter) ([]domain.DailySale, error) {
	query := `
		SELECT sale_id, customer_id, customer_name, sale_date, total_amount, paid_amount, is_paid, created_at
		FROM daily_sales
	`
	conds := []string{}
	args := []any{}

	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		conds = append(conds, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	switch {
	case filter.Date != "":
		args = append(args, filter.Date)
		conds = append(conds, fmt.Sprintf("sale_date = $%d", len(args)))
	case filter.StartDate != "" && filter.EndDate != "":
		args = append(args, filter.StartDate)
		conds = append(conds, fmt.Sprintf("sale_date >= $%d", len(args)))
		args = append(args, filter.EndDate)
		conds = append(conds, fmt.Sprintf("sale_date <= $%d", len(args)))
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY sale_date DESC, created_at DESC;`

	return r.queryDailySales(ctx, query, args...)
}

func (r *PgxSaleRepository) FindSalesInWindow(ctx context.Context, customerID, start, end string) ([]domain.DailySale, error) {
	query := `
		SELECT sale_id, customer_id, customer_name, sale_date, total_amount, paid_amount, is_paid, created_at
		FROM daily_sales
		WHERE customer_id = $1 AND sale_date >= $2 AND sale_date < $3
		ORDER BY sale_date, created_at;
	`
	return r.queryDailySales(ctx, query, customerID, start, end)
}

// UpdateSalePayment amends the sale's payment and applies the balance delta
// in one transaction. A customer row that no longer exists is tolerated: the
// sale amendment itself must not fail because its customer was deleted.
func (r *PgxSaleRepository) UpdateSalePayment(ctx context.Context, saleID, customerID string, paidAmount decimal.Decimal, isPaid bool, balanceDelta decimal.Decimal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tag, err := tx.Exec(ctx,
		`UPDATE daily_sales SET paid_amount = $1, is_paid = $2 WHERE sale_id = $3;`,
		paidAmount, isPaid, saleID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment for sale %s: %w", saleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	_, err = tx.Exec(ctx,
		`UPDATE customers SET outstanding_balance = outstanding_balance + $1 WHERE customer_id = $2;`,
		balanceDelta, customerID,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust balance for customer %s: %w", customerID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit payment update for sale %s: %w", saleID, err)
	}

	return nil
}

// DeleteDailySale reverses the sale's balance contribution and removes the
// sale with its items in one transaction.
func (r *PgxSaleRepository) DeleteDailySale(ctx context.Context, saleID, customerID string, balanceDelta decimal.Decimal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx,
		`UPDATE customers SET outstanding_balance = outstanding_balance + $1 WHERE customer_id = $2;`,
		balanceDelta, customerID,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust balance for customer %s: %w", customerID, err)
	}

	_, err = tx.Exec(ctx,
		`DELETE FROM sale_items WHERE sale_id = $1 AND sale_kind = $2;`,
		saleID, models.DailyKind,
	)
	if err != nil {
		return fmt.Errorf("failed to delete items for sale %s: %w", saleID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM daily_sales WHERE sale_id = $1;`, saleID)
	if err != nil {
		return fmt.Errorf("failed to delete sale %s: %w", saleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit deletion of sale %s: %w", saleID, err)
	}

	return nil
}

// scanDailySaleRow scans one daily sale row; the sale date is formatted back
// to its YYYY-MM-DD string form.
func scanDailySaleRow(row pgx.Row) (*domain.DailySale, error) {
	var m models.DailySale
	var saleDate time.Time
	if err := row.Scan(
		&m.SaleID,
		&m.CustomerID,
		&m.CustomerName,
		&saleDate,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.IsPaid,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	m.Date = saleDate.Format(domain.DateLayout)
	sale := toDomainDailySale(m)
	return &sale, nil
}

func toDomainDailySale(m models.DailySale) domain.DailySale {
	return domain.DailySale{
		SaleID:       m.SaleID,
		CustomerID:   m.CustomerID,
		CustomerName: m.CustomerName,
		Date:         m.Date,
		TotalAmount:  m.TotalAmount,
		PaidAmount:   m.PaidAmount,
		IsPaid:       m.IsPaid,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *PgxSaleRepository) queryDailySales(ctx context.Context, query string, args ...any) ([]domain.DailySale, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.DailySale{}
	saleIDs := []string{}
	for rows.Next() {
		sale, err := scanDailySaleRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily sale row: %w", err)
		}
		sales = append(sales, *sale)
		saleIDs = append(saleIDs, sale.SaleID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily sale rows: %w", err)
	}

	if len(sales) == 0 {
		return sales, nil
	}

	itemsBySale, err := r.loadItems(ctx, saleIDs, models.DailyKind)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		sales[i].Items = itemsBySale[sales[i].SaleID]
	}

	return sales, nil
}

// loadItems fetches the items of many sales in one query, keyed by sale ID
// and ordered by their original position.
func (r *PgxSaleRepository) loadItems(ctx context.Context, saleIDs []string, kind models.SaleKind) (map[string][]domain.SaleItem, error) {
	return loadSaleItems(ctx, r.pool, saleIDs, kind)
}

func loadSaleItems(ctx context.Context, pool *pgxpool.Pool, saleIDs []string, kind models.SaleKind) (map[string][]domain.SaleItem, error) {
	query := `
		SELECT sale_id, product_id, product_name, unit, quantity, unit_price, line_total
		FROM sale_items
		WHERE sale_id = ANY($1) AND sale_kind = $2
		ORDER BY sale_id, position;
	`
	rows, err := pool.Query(ctx, query, saleIDs, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	itemsBySale := make(map[string][]domain.SaleItem, len(saleIDs))
	for rows.Next() {
		var m models.SaleItem
		if err := rows.Scan(
			&m.SaleID,
			&m.ProductID,
			&m.ProductName,
			&m.Unit,
			&m.Quantity,
			&m.UnitPrice,
			&m.LineTotal,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale item row: %w", err)
		}
		itemsBySale[m.SaleID] = append(itemsBySale[m.SaleID], toDomainSaleItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale item rows: %w", err)
	}

	return itemsBySale, nil
}
