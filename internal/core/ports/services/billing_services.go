package services

import (
	"context"

	"github.com/latadairy/dairy_backend/internal/core/domain"
)

// BillingSvcFacade defines the monthly billing operations exposed to handlers.
type BillingSvcFacade interface {
	ListBillsByPeriod(ctx context.Context, month, year int) ([]domain.MonthlyBill, error)
	ListBillsByCustomer(ctx context.Context, customerID string) ([]domain.MonthlyBill, error)

	// GenerateBills produces one snapshot bill per active customer with sales
	// in the (month, year) window, upserting over any previous snapshot for
	// the same period.
	GenerateBills(ctx context.Context, month, year int) ([]domain.MonthlyBill, error)

	// GetBillDetails returns the bill and the daily sales of its window,
	// ordered by date ascending.
	GetBillDetails(ctx context.Context, billID string) (*domain.MonthlyBill, []domain.DailySale, error)

	// SendBillEmail renders the bill statement and emails it to the
	// recipient, then flips the bill's email_sent flag. Returns the provider
	// message ID.
	SendBillEmail(ctx context.Context, billID, recipientEmail string) (string, error)
}
