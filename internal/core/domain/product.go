package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a sellable dairy item. Sales keep a denormalized copy of
// the product name and price at the time of sale, so products can be deleted
// without corrupting historical records.
type Product struct {
	ProductID   string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"` // liter, kg, piece
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}
