package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBill is a snapshot of a customer's activity for one calendar month.
// BalanceDue is total_sales - total_paid for that month only, not the
// customer's live outstanding balance. At most one bill exists per
// (customer, month, year); regeneration overwrites the fields in place,
// keeps the identifier and resets EmailSent.
type MonthlyBill struct {
	BillID       string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Month        int             `json:"month"` // 1-12
	Year         int             `json:"year"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	BalanceDue   decimal.Decimal `json:"balance_due"`
	SalesCount   int             `json:"sales_count"`
	GeneratedAt  time.Time       `json:"generated_at"`
	EmailSent    bool            `json:"email_sent"`
}

// MonthName returns the English name of the bill's month.
func (b MonthlyBill) MonthName() string {
	return time.Month(b.Month).String()
}
