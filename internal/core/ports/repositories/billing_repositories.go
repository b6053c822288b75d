package repositories

import (
	"context"

	"github.com/latadairy/dairy_backend/internal/core/domain"
)

// BillingRepository defines the persistence operations for monthly bill
// snapshots. At most one bill exists per (customer, month, year); the
// uniqueness is a composite constraint in the store, not an application-level
// check-then-insert.
type BillingRepository interface {
	FindBillsByPeriod(ctx context.Context, month, year int) ([]domain.MonthlyBill, error)
	// FindBillsByCustomer lists a customer's bills, newest period first.
	FindBillsByCustomer(ctx context.Context, customerID string) ([]domain.MonthlyBill, error)
	FindBillByID(ctx context.Context, billID string) (*domain.MonthlyBill, error)

	// UpsertBill inserts the bill or, when one already exists for the same
	// (customer, month, year), overwrites its fields in place keeping the
	// stored identifier and resetting email_sent. The persisted bill is
	// returned.
	UpsertBill(ctx context.Context, bill domain.MonthlyBill) (*domain.MonthlyBill, error)

	MarkEmailSent(ctx context.Context, billID string) error
}
