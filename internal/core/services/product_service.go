package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/latadairy/dairy_backend/internal/apperrors"
	"github.com/latadairy/dairy_backend/internal/core/domain"
	portsrepo "github.com/latadairy/dairy_backend/internal/core/ports/repositories"
	"github.com/latadairy/dairy_backend/internal/dto"
)

type ProductService struct {
	productRepo portsrepo.ProductRepository
}

func NewProductService(productRepo portsrepo.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	product := domain.Product{
		ProductID:   uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		Unit:        req.Unit,
		Price:       req.Price,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	products, err := s.productRepo.FindProducts(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// UpdateProduct applies a partial update after loading the current row, so
// omitted fields keep their stored values.
func (s *ProductService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	if !req.HasChanges() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s for update: %w", productID, err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	return nil
}

func (s *ProductService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list product categories: %w", err)
	}
	return categories, nil
}
