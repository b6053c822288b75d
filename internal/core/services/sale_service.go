package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/latadairy/dairy_backend/internal/core/domain"
	portsrepo "github.com/latadairy/dairy_backend/internal/core/ports/repositories"
	"github.com/latadairy/dairy_backend/internal/dto"
	"github.com/latadairy/dairy_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// SaleService records daily credit sales and keeps each customer's
// outstanding balance reconciled with their sales. Every mutation computes
// the balance delta here and hands it to the repository, which applies the
// sale write and the balance increment in one transaction.
type SaleService struct {
	saleRepo     portsrepo.SaleRepository
	customerRepo portsrepo.CustomerRepository
}

func NewSaleService(saleRepo portsrepo.SaleRepository, customerRepo portsrepo.CustomerRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo, customerRepo: customerRepo}
}

// CreateDailySale records a credit sale. The sale's unpaid portion
// (total - paid) is added to the customer's outstanding balance.
func (s *SaleService) CreateDailySale(ctx context.Context, req dto.CreateDailySaleRequest) (*domain.DailySale, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer %s for sale: %w", req.CustomerID, err)
	}

	items := dto.ToSaleItems(req.Items)
	total := domain.ItemsTotal(items)
	paid := req.PaidAmount

	sale := domain.DailySale{
		SaleID:       uuid.NewString(),
		CustomerID:   customer.CustomerID,
		CustomerName: customer.Name,
		Date:         req.Date,
		Items:        items,
		TotalAmount:  total,
		PaidAmount:   paid,
		IsPaid:       paid.GreaterThanOrEqual(total),
		CreatedAt:    time.Now().UTC(),
	}

	balanceDelta := total.Sub(paid)
	if err := s.saleRepo.SaveDailySale(ctx, sale, balanceDelta); err != nil {
		return nil, fmt.Errorf("failed to create daily sale: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("daily sale recorded",
		"sale_id", sale.SaleID,
		"customer_id", sale.CustomerID,
		"total", total.String(),
		"balance_delta", balanceDelta.String(),
	)

	return &sale, nil
}

func (s *SaleService) GetDailySaleByID(ctx context.Context, saleID string) (*domain.DailySale, error) {
	sale, err := s.saleRepo.FindDailySaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily sale %s: %w", saleID, err)
	}
	return sale, nil
}

func (s *SaleService) ListDailySales(ctx context.Context, params dto.ListDailySalesParams) ([]domain.DailySale, error) {
	filter := portsrepo.DailySaleFilter{
		CustomerID: params.CustomerID,
		Date:       params.Date,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
	}
	sales, err := s.saleRepo.FindDailySales(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily sales: %w", err)
	}
	return sales, nil
}

// UpdateSalePayment amends how much of the sale has been paid. The customer's
// balance moves by (oldPaid - newPaid): paying more shrinks the balance,
// reverting a payment grows it back.
func (s *SaleService) UpdateSalePayment(ctx context.Context, saleID string, paidAmount decimal.Decimal) (*domain.DailySale, error) {
	sale, err := s.saleRepo.FindDailySaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily sale %s for payment update: %w", saleID, err)
	}

	balanceDelta := sale.PaidAmount.Sub(paidAmount)
	isPaid := paidAmount.GreaterThanOrEqual(sale.TotalAmount)

	if err := s.saleRepo.UpdateSalePayment(ctx, saleID, sale.CustomerID, paidAmount, isPaid, balanceDelta); err != nil {
		return nil, fmt.Errorf("failed to update payment for sale %s: %w", saleID, err)
	}

	sale.PaidAmount = paidAmount
	sale.IsPaid = isPaid
	return sale, nil
}

// DeleteDailySale removes the sale and backs its unpaid portion out of the
// customer's balance.
func (s *SaleService) DeleteDailySale(ctx context.Context, saleID string) error {
	sale, err := s.saleRepo.FindDailySaleByID(ctx, saleID)
	if err != nil {
		return fmt.Errorf("failed to load daily sale %s for deletion: %w", saleID, err)
	}

	balanceDelta := sale.Outstanding().Neg()
	if err := s.saleRepo.DeleteDailySale(ctx, saleID, sale.CustomerID, balanceDelta); err != nil {
		return fmt.Errorf("failed to delete daily sale %s: %w", saleID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("daily sale deleted",
		"sale_id", saleID,
		"customer_id", sale.CustomerID,
		"balance_delta", balanceDelta.String(),
	)

	return nil
}
