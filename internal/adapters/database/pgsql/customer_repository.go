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

type PgxCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCustomerRepository creates a new repository for customer data.
func NewPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{pool: pool}
}

var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

// Helper to convert domain.Customer to models.Customer
func toModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:         d.CustomerID,
		Name:               d.Name,
		Phone:              d.Phone,
		Address:            d.Address,
		Email:              d.Email,
		OutstandingBalance: d.OutstandingBalance,
		CreditLimit:        d.CreditLimit,
		IsActive:           d.IsActive,
		CreatedAt:          d.CreatedAt,
	}
}

// Helper to convert models.Customer to domain.Customer
func toDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:         m.CustomerID,
		Name:               m.Name,
		Phone:              m.Phone,
		Address:            m.Address,
		Email:              m.Email,
		OutstandingBalance: m.OutstandingBalance,
		CreditLimit:        m.CreditLimit,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
	}
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := toModelCustomer(customer)
	query := `
		INSERT INTO customers (customer_id, name, phone, address, email, outstanding_balance, credit_limit, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.Phone,
		m.Address,
		m.Email,
		m.OutstandingBalance,
		m.CreditLimit,
		m.IsActive,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save customer %s: %w", m.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, phone, address, email, outstanding_balance, credit_limit, is_active, created_at
		FROM customers
		WHERE customer_id = $1;
	`
	var m models.Customer
	err := r.pool.QueryRow(ctx, query, customerID).Scan(
		&m.CustomerID,
		&m.Name,
		&m.Phone,
		&m.Address,
		&m.Email,
		&m.OutstandingBalance,
		&m.CreditLimit,
		&m.IsActive,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}

	customer := toDomainCustomer(m)
	return &customer, nil
}

func (r *PgxCustomerRepository) FindCustomers(ctx context.Context, activeOnly bool) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, phone, address, email, outstanding_balance, credit_limit, is_active, created_at
		FROM customers
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var m models.Customer
		if err := rows.Scan(
			&m.CustomerID,
			&m.Name,
			&m.Phone,
			&m.Address,
			&m.Email,
			&m.OutstandingBalance,
			&m.CreditLimit,
			&m.IsActive,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, toDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}

	return customers, nil
}

// UpdateCustomer writes the customer's editable fields. The outstanding
// balance is excluded on purpose: only the sale repository's transactional
// writes may move it.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := toModelCustomer(customer)
	query := `
		UPDATE customers
		SET name = $2, phone = $3, address = $4, email = $5, credit_limit = $6, is_active = $7
		WHERE customer_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.Phone,
		m.Address,
		m.Email,
		m.CreditLimit,
		m.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", m.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
