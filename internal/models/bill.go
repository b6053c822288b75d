package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBill is the database row for a billing snapshot. Uniqueness of
// (customer_id, month, year) is enforced by a composite constraint.
type MonthlyBill struct {
	BillID       string          `db:"bill_id"`
	CustomerID   string          `db:"customer_id"`
	CustomerName string          `db:"customer_name"`
	Month        int             `db:"month"`
	Year         int             `db:"year"`
	TotalSales   decimal.Decimal `db:"total_sales"`
	TotalPaid    decimal.Decimal `db:"total_paid"`
	BalanceDue   decimal.Decimal `db:"balance_due"`
	SalesCount   int             `db:"sales_count"`
	GeneratedAt  time.Time       `db:"generated_at"`
	EmailSent    bool            `db:"email_sent"`
}
