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
	"github.com/shopspring/decimal"
)

// defaultCreditLimit is applied when a customer is created without one.
// The limit is informational and never enforced against sales.
var defaultCreditLimit = decimal.NewFromInt(5000)

type CustomerService struct {
	customerRepo portsrepo.CustomerRepository
}

func NewCustomerService(customerRepo portsrepo.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	creditLimit := defaultCreditLimit
	if req.CreditLimit != nil {
		creditLimit = *req.CreditLimit
	}

	customer := domain.Customer{
		CustomerID:         uuid.NewString(),
		Name:               req.Name,
		Phone:              req.Phone,
		Address:            req.Address,
		Email:              req.Email,
		OutstandingBalance: decimal.Zero,
		CreditLimit:        creditLimit,
		IsActive:           true,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &customer, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, activeOnly bool) ([]domain.Customer, error) {
	customers, err := s.customerRepo.FindCustomers(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// UpdateCustomer applies a partial update. The outstanding balance is not an
// updatable field here; only sale operations move it.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	if !req.HasChanges() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer %s for update: %w", customerID, err)
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.CreditLimit != nil {
		customer.CreditLimit = *req.CreditLimit
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, fmt.Errorf("failed to update customer %s: %w", customerID, err)
	}

	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	return nil
}
