package dto

import (
	"time"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the payload for creating a customer.
// CreditLimit defaults to 5000 when omitted; it is informational only.
type CreateCustomerRequest struct {
	Name        string           `json:"name" binding:"required"`
	Phone       string           `json:"phone" binding:"required"`
	Address     string           `json:"address" binding:"required"`
	Email       string           `json:"email" binding:"omitempty,email"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
}

// UpdateCustomerRequest defines the data allowed for a partial customer
// update. The outstanding balance is deliberately absent: it is only ever
// moved by sale operations.
type UpdateCustomerRequest struct {
	Name        *string          `json:"name"`
	Phone       *string          `json:"phone"`
	Address     *string          `json:"address"`
	Email       *string          `json:"email"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	IsActive    *bool            `json:"is_active"`
}

// HasChanges reports whether the request carries at least one field to apply.
func (r UpdateCustomerRequest) HasChanges() bool {
	return r.Name != nil || r.Phone != nil || r.Address != nil ||
		r.Email != nil || r.CreditLimit != nil || r.IsActive != nil
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	ActiveOnly bool `form:"active_only"`
}

// CustomerResponse is the API shape of a customer.
type CustomerResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Phone              string          `json:"phone"`
	Address            string          `json:"address"`
	Email              string          `json:"email"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	CreditLimit        decimal.Decimal `json:"credit_limit"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ToCustomerResponse converts a domain.Customer to its API shape.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                 c.CustomerID,
		Name:               c.Name,
		Phone:              c.Phone,
		Address:            c.Address,
		Email:              c.Email,
		OutstandingBalance: c.OutstandingBalance,
		CreditLimit:        c.CreditLimit,
		IsActive:           c.IsActive,
		CreatedAt:          c.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of domain customers.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = ToCustomerResponse(&customers[i])
	}
	return out
}
