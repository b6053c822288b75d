package repositories

import (
	"context"

	"github.com/latadairy/dairy_backend/internal/core/domain"
)

// CustomerRepository defines the persistence operations for Customers.
// Balance adjustments are not exposed here; they happen inside the sale
// repository's transactional writes so the balance invariant cannot be
// violated by a partial failure.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	FindCustomers(ctx context.Context, activeOnly bool) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, customerID string) error
}
