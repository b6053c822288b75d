package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the database row for a sellable item.
type Product struct {
	ProductID   string          `db:"product_id"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	Unit        string          `db:"unit"`
	Price       decimal.Decimal `db:"price"`
	Description string          `db:"description"`
	IsActive    bool            `db:"is_active"`
	CreatedAt   time.Time       `db:"created_at"`
}
