package repositories

import (
	"context"

	"github.com/latadairy/dairy_backend/internal/core/domain"
)

// ProductRepository defines the persistence operations for Products.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	FindProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
	ListCategories(ctx context.Context) ([]string, error)
}
