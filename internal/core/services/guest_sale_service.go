package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/latadairy/dairy_backend/internal/core/domain"
	portsrepo "github.com/latadairy/dairy_backend/internal/core/ports/repositories"
	"github.com/latadairy/dairy_backend/internal/dto"
)

// GuestSaleService records walk-in sales. Guest sales are settled in full at
// entry, dated today, and never touch any customer balance.
type GuestSaleService struct {
	guestSaleRepo portsrepo.GuestSaleRepository
}

func NewGuestSaleService(guestSaleRepo portsrepo.GuestSaleRepository) *GuestSaleService {
	return &GuestSaleService{guestSaleRepo: guestSaleRepo}
}

func (s *GuestSaleService) CreateGuestSale(ctx context.Context, req dto.CreateGuestSaleRequest) (*domain.GuestSale, error) {
	guestName := req.GuestName
	if guestName == "" {
		guestName = "Walk-in Customer"
	}
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	items := dto.ToSaleItems(req.Items)
	now := time.Now().UTC()

	sale := domain.GuestSale{
		SaleID:        uuid.NewString(),
		GuestName:     guestName,
		GuestPhone:    req.GuestPhone,
		Date:          now.Format(domain.DateLayout),
		Items:         items,
		TotalAmount:   domain.ItemsTotal(items),
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
	}

	if err := s.guestSaleRepo.SaveGuestSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create guest sale: %w", err)
	}

	return &sale, nil
}

func (s *GuestSaleService) ListGuestSales(ctx context.Context, date string) ([]domain.GuestSale, error) {
	sales, err := s.guestSaleRepo.FindGuestSales(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list guest sales: %w", err)
	}
	return sales, nil
}
