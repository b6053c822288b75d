package services

import (
	"context"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	"github.com/latadairy/dairy_backend/internal/dto"
)

// ProductSvcFacade defines the product operations exposed to handlers.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	ListCategories(ctx context.Context) ([]string, error)
}
