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

type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// NewPgxProductRepository creates a new repository for product data.
func NewPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{pool: pool}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

// Helper to convert domain.Product to models.Product
func toModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		Name:        d.Name,
		Category:    d.Category,
		Unit:        d.Unit,
		Price:       d.Price,
		Description: d.Description,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
	}
}

// Helper to convert models.Product to domain.Product
func toDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		Name:        m.Name,
		Category:    m.Category,
		Unit:        m.Unit,
		Price:       m.Price,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := toModelProduct(product)
	query := `
		INSERT INTO products (product_id, name, category, unit, price, description, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ProductID,
		m.Name,
		m.Category,
		m.Unit,
		m.Price,
		m.Description,
		m.IsActive,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT product_id, name, category, unit, price, description, is_active, created_at
		FROM products
		WHERE product_id = $1;
	`
	var m models.Product
	err := r.pool.QueryRow(ctx, query, productID).Scan(
		&m.ProductID,
		&m.Name,
		&m.Category,
		&m.Unit,
		&m.Price,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}

	product := toDomainProduct(m)
	return &product, nil
}

func (r *PgxProductRepository) FindProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	query := `
		SELECT product_id, name, category, unit, price, description, is_active, created_at
		FROM products
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var m models.Product
		if err := rows.Scan(
			&m.ProductID,
			&m.Name,
			&m.Category,
			&m.Unit,
			&m.Price,
			&m.Description,
			&m.IsActive,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, toDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return products, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := toModelProduct(product)
	query := `
		UPDATE products
		SET name = $2, category = $3, unit = $4, price = $5, description = $6, is_active = $7
		WHERE product_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.ProductID,
		m.Name,
		m.Category,
		m.Unit,
		m.Price,
		m.Description,
		m.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", m.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT category FROM products ORDER BY category;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query product categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return categories, nil
}
