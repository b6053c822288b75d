package dto

import (
	"time"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillingPeriodParams defines the (month, year) query parameters shared by
// bill listing and generation.
type BillingPeriodParams struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=2000"`
}

// MonthlyBillResponse is the API shape of a billing snapshot.
type MonthlyBillResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	BalanceDue   decimal.Decimal `json:"balance_due"`
	SalesCount   int             `json:"sales_count"`
	GeneratedAt  time.Time       `json:"generated_at"`
	EmailSent    bool            `json:"email_sent"`
}

// GenerateBillsResponse wraps the outcome of a billing generation run.
type GenerateBillsResponse struct {
	Message string                `json:"message"`
	Bills   []MonthlyBillResponse `json:"bills"`
}

// BillDetailsResponse pairs a bill with the sales of its window.
type BillDetailsResponse struct {
	Bill  MonthlyBillResponse `json:"bill"`
	Sales []DailySaleResponse `json:"sales"`
}

// ToMonthlyBillResponse converts a domain.MonthlyBill to its API shape.
func ToMonthlyBillResponse(b *domain.MonthlyBill) MonthlyBillResponse {
	return MonthlyBillResponse{
		ID:           b.BillID,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		Month:        b.Month,
		Year:         b.Year,
		TotalSales:   b.TotalSales,
		TotalPaid:    b.TotalPaid,
		BalanceDue:   b.BalanceDue,
		SalesCount:   b.SalesCount,
		GeneratedAt:  b.GeneratedAt,
		EmailSent:    b.EmailSent,
	}
}

// ToMonthlyBillResponses converts a slice of domain bills.
func ToMonthlyBillResponses(bills []domain.MonthlyBill) []MonthlyBillResponse {
	out := make([]MonthlyBillResponse, len(bills))
	for i := range bills {
		out[i] = ToMonthlyBillResponse(&bills[i])
	}
	return out
}
