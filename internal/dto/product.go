package dto

import (
	"time"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the payload for creating a product.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Unit        string          `json:"unit" binding:"required"` // liter, kg, piece
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// UpdateProductRequest defines the data allowed for a partial product update.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Unit        *string          `json:"unit"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	IsActive    *bool            `json:"is_active"`
}

// HasChanges reports whether the request carries at least one field to apply.
func (r UpdateProductRequest) HasChanges() bool {
	return r.Name != nil || r.Category != nil || r.Unit != nil ||
		r.Price != nil || r.Description != nil || r.IsActive != nil
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	ActiveOnly bool `form:"active_only"`
}

// ProductResponse is the API shape of a product.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToProductResponse converts a domain.Product to its API shape.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ProductID,
		Name:        p.Name,
		Category:    p.Category,
		Unit:        p.Unit,
		Price:       p.Price,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}

// ToProductResponses converts a slice of domain products.
func ToProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}
