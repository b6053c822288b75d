package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the database row for a credit customer.
type Customer struct {
	CustomerID         string          `db:"customer_id"`
	Name               string          `db:"name"`
	Phone              string          `db:"phone"`
	Address            string          `db:"address"`
	Email              string          `db:"email"`
	OutstandingBalance decimal.Decimal `db:"outstanding_balance"`
	CreditLimit        decimal.Decimal `db:"credit_limit"`
	IsActive           bool            `db:"is_active"`
	CreatedAt          time.Time       `db:"created_at"`
}
