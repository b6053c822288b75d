package dto

import (
	"time"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one line of a sale being created. The product name,
// unit and price are supplied by the caller and stored as a snapshot; the
// line total is trusted as sent, matching the rest of the system's
// caller-computed totals.
type SaleItemRequest struct {
	ProductID   string          `json:"product_id" binding:"required"`
	ProductName string          `json:"product_name" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// ToSaleItem converts the request line into its domain value.
func (r SaleItemRequest) ToSaleItem() domain.SaleItem {
	return domain.SaleItem{
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		Price:       r.Price,
		Total:       r.Total,
	}
}

// ToSaleItems converts a slice of request lines.
func ToSaleItems(reqs []SaleItemRequest) []domain.SaleItem {
	items := make([]domain.SaleItem, len(reqs))
	for i, r := range reqs {
		items[i] = r.ToSaleItem()
	}
	return items
}

// CreateDailySaleRequest defines the payload for recording a credit sale.
// PaidAmount defaults to zero (fully on credit).
type CreateDailySaleRequest struct {
	CustomerID string            `json:"customer_id" binding:"required"`
	Date       string            `json:"date" binding:"required,datetime=2006-01-02"`
	Items      []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaidAmount decimal.Decimal   `json:"paid_amount"`
}

// ListDailySalesParams defines query parameters for listing daily sales.
// An exact date takes precedence over the start/end range.
type ListDailySalesParams struct {
	CustomerID string `form:"customer_id"`
	Date       string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	StartDate  string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// SaleItemResponse is the API shape of a sale line.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// DailySaleResponse is the API shape of a credit sale.
type DailySaleResponse struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	Date         string             `json:"date"`
	Items        []SaleItemResponse `json:"items"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	PaidAmount   decimal.Decimal    `json:"paid_amount"`
	IsPaid       bool               `json:"is_paid"`
	CreatedAt    time.Time          `json:"created_at"`
}

func toSaleItemResponses(items []domain.SaleItem) []SaleItemResponse {
	out := make([]SaleItemResponse, len(items))
	for i, item := range items {
		out[i] = SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Price:       item.Price,
			Total:       item.Total,
		}
	}
	return out
}

// ToDailySaleResponse converts a domain.DailySale to its API shape.
func ToDailySaleResponse(s *domain.DailySale) DailySaleResponse {
	return DailySaleResponse{
		ID:           s.SaleID,
		CustomerID:   s.CustomerID,
		CustomerName: s.CustomerName,
		Date:         s.Date,
		Items:        toSaleItemResponses(s.Items),
		TotalAmount:  s.TotalAmount,
		PaidAmount:   s.PaidAmount,
		IsPaid:       s.IsPaid,
		CreatedAt:    s.CreatedAt,
	}
}

// ToDailySaleResponses converts a slice of domain daily sales.
func ToDailySaleResponses(sales []domain.DailySale) []DailySaleResponse {
	out := make([]DailySaleResponse, len(sales))
	for i := range sales {
		out[i] = ToDailySaleResponse(&sales[i])
	}
	return out
}
