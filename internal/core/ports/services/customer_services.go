package services

import (
	"context"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	"github.com/latadairy/dairy_backend/internal/dto"
)

// CustomerSvcFacade defines the customer operations exposed to handlers.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, activeOnly bool) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}
