package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleKind discriminates which parent table a sale item row belongs to.
type SaleKind string

const (
	DailyKind SaleKind = "DAILY"
	GuestKind SaleKind = "GUEST"
)

// DailySale is the database row for a credit sale.
type DailySale struct {
	SaleID       string          `db:"sale_id"`
	CustomerID   string          `db:"customer_id"`
	CustomerName string          `db:"customer_name"`
	Date         string          `db:"sale_date"` // YYYY-MM-DD
	TotalAmount  decimal.Decimal `db:"total_amount"`
	PaidAmount   decimal.Decimal `db:"paid_amount"`
	IsPaid       bool            `db:"is_paid"`
	CreatedAt    time.Time       `db:"created_at"`
}

// GuestSale is the database row for a walk-in sale.
type GuestSale struct {
	SaleID        string          `db:"sale_id"`
	GuestName     string          `db:"guest_name"`
	GuestPhone    string          `db:"guest_phone"`
	Date          string          `db:"sale_date"` // YYYY-MM-DD
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaymentMethod string          `db:"payment_method"`
	CreatedAt     time.Time       `db:"created_at"`
}

// SaleItem is the database row for one line of a daily or guest sale.
// Rows are inserted together with their parent sale and never updated.
type SaleItem struct {
	ItemID      string          `db:"item_id"`
	SaleID      string          `db:"sale_id"`
	SaleKind    SaleKind        `db:"sale_kind"`
	Position    int             `db:"position"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Unit        string          `db:"unit"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	LineTotal   decimal.Decimal `db:"line_total"`
}
