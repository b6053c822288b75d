package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format used for all sale dates.
const DateLayout = "2006-01-02"

// SaleItem is a single line of a sale. Product name, unit and price are
// snapshots taken at the time of sale; items are immutable once the parent
// sale exists.
type SaleItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// ItemsTotal sums the line totals of a set of sale items.
func ItemsTotal(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total)
	}
	return total
}

// DailySale is a credit sale to a registered customer. Creation, payment
// amendment and deletion each adjust the customer's outstanding balance.
type DailySale struct {
	SaleID       string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Date         string          `json:"date"` // YYYY-MM-DD
	Items        []SaleItem      `json:"items"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
	IsPaid       bool            `json:"is_paid"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Outstanding is the sale's contribution to the owning customer's balance.
func (s DailySale) Outstanding() decimal.Decimal {
	return s.TotalAmount.Sub(s.PaidAmount)
}

// GuestSale is a walk-in sale settled in full at the time of entry. It carries
// no customer reference and never affects any outstanding balance.
type GuestSale struct {
	SaleID        string          `json:"id"`
	GuestName     string          `json:"guest_name"`
	GuestPhone    string          `json:"guest_phone"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Items         []SaleItem      `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}
