package dto

import (
	"time"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGuestSaleRequest defines the payload for recording a walk-in sale.
// The sale date is always today; walk-in sales are settled in full at entry.
type CreateGuestSaleRequest struct {
	GuestName     string            `json:"guest_name"`
	GuestPhone    string            `json:"guest_phone"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method"`
}

// ListGuestSalesParams defines query parameters for listing guest sales.
type ListGuestSalesParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// GuestSaleResponse is the API shape of a walk-in sale.
type GuestSaleResponse struct {
	ID            string             `json:"id"`
	GuestName     string             `json:"guest_name"`
	GuestPhone    string             `json:"guest_phone"`
	Date          string             `json:"date"`
	Items         []SaleItemResponse `json:"items"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`
}

// ToGuestSaleResponse converts a domain.GuestSale to its API shape.
func ToGuestSaleResponse(s *domain.GuestSale) GuestSaleResponse {
	return GuestSaleResponse{
		ID:            s.SaleID,
		GuestName:     s.GuestName,
		GuestPhone:    s.GuestPhone,
		Date:          s.Date,
		Items:         toSaleItemResponses(s.Items),
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		CreatedAt:     s.CreatedAt,
	}
}

// ToGuestSaleResponses converts a slice of domain guest sales.
func ToGuestSaleResponses(sales []domain.GuestSale) []GuestSaleResponse {
	out := make([]GuestSaleResponse, len(sales))
	for i := range sales {
		out[i] = ToGuestSaleResponse(&sales[i])
	}
	return out
}
