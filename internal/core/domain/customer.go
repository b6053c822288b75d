package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a regular (credit) customer.
//
// Invariant: OutstandingBalance equals the sum over all of the customer's
// daily sales of (TotalAmount - PaidAmount). The balance is maintained
// incrementally by the sale service; every mutating sale operation applies
// its delta in the same database transaction as the sale write.
type Customer struct {
	CustomerID         string          `json:"id"`
	Name               string          `json:"name"`
	Phone              string          `json:"phone"`
	Address            string          `json:"address"`
	Email              string          `json:"email"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"` // negative when overpaid
	CreditLimit        decimal.Decimal `json:"credit_limit"`        // informational only, not enforced
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
}
