package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/latadairy/dairy_backend/internal/core/domain"
	portsrepo "github.com/latadairy/dairy_backend/internal/core/ports/repositories"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
	"github.com/latadairy/dairy_backend/internal/middleware"
)

// BillingService generates monthly snapshot bills and sends bill statement
// emails. A bill captures one customer's sales for one calendar month;
// regenerating a period overwrites the existing snapshot in place.
type BillingService struct {
	billingRepo  portsrepo.BillingRepository
	saleRepo     portsrepo.SaleRepository
	customerRepo portsrepo.CustomerRepository
	emailSender  portssvc.EmailSender
}

func NewBillingService(
	billingRepo portsrepo.BillingRepository,
	saleRepo portsrepo.SaleRepository,
	customerRepo portsrepo.CustomerRepository,
	emailSender portssvc.EmailSender,
) *BillingService {
	return &BillingService{
		billingRepo:  billingRepo,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		emailSender:  emailSender,
	}
}

func (s *BillingService) ListBillsByPeriod(ctx context.Context, month, year int) ([]domain.MonthlyBill, error) {
	bills, err := s.billingRepo.FindBillsByPeriod(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills for %d/%d: %w", month, year, err)
	}
	return bills, nil
}

func (s *BillingService) ListBillsByCustomer(ctx context.Context, customerID string) ([]domain.MonthlyBill, error) {
	bills, err := s.billingRepo.FindBillsByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills for customer %s: %w", customerID, err)
	}
	return bills, nil
}

// GenerateBills walks every active customer, totals their sales for the
// month and upserts one snapshot bill per customer with activity. Customers
// with no sales in the window are skipped, not billed at zero.
func (s *BillingService) GenerateBills(ctx context.Context, month, year int) ([]domain.MonthlyBill, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	start, end := domain.MonthWindow(month, year)

	customers, err := s.customerRepo.FindCustomers(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers for billing: %w", err)
	}

	bills := []domain.MonthlyBill{}
	for _, customer := range customers {
		sales, err := s.saleRepo.FindSalesInWindow(ctx, customer.CustomerID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to load sales for customer %s in %d/%d: %w", customer.CustomerID, month, year, err)
		}
		if len(sales) == 0 {
			continue
		}

		bill := domain.MonthlyBill{
			BillID:       uuid.NewString(),
			CustomerID:   customer.CustomerID,
			CustomerName: customer.Name,
			Month:        month,
			Year:         year,
			SalesCount:   len(sales),
			GeneratedAt:  time.Now().UTC(),
		}
		for _, sale := range sales {
			bill.TotalSales = bill.TotalSales.Add(sale.TotalAmount)
			bill.TotalPaid = bill.TotalPaid.Add(sale.PaidAmount)
		}
		bill.BalanceDue = bill.TotalSales.Sub(bill.TotalPaid)

		saved, err := s.billingRepo.UpsertBill(ctx, bill)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert bill for customer %s: %w", customer.CustomerID, err)
		}
		bills = append(bills, *saved)
	}

	logger.Info("monthly bills generated",
		"month", month,
		"year", year,
		"bill_count", len(bills),
	)

	return bills, nil
}

// GetBillDetails returns a bill together with the daily sales of its window,
// oldest first.
func (s *BillingService) GetBillDetails(ctx context.Context, billID string) (*domain.MonthlyBill, []domain.DailySale, error) {
	bill, err := s.billingRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get bill %s: %w", billID, err)
	}

	start, end := domain.MonthWindow(bill.Month, bill.Year)
	sales, err := s.saleRepo.FindSalesInWindow(ctx, bill.CustomerID, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load sales for bill %s: %w", billID, err)
	}

	return bill, sales, nil
}

// SendBillEmail renders the bill's statement, emails it and marks the bill
// as sent. The sent flag is only flipped after the provider accepts the
// message.
func (s *BillingService) SendBillEmail(ctx context.Context, billID, recipientEmail string) (string, error) {
	bill, err := s.billingRepo.FindBillByID(ctx, billID)
	if err != nil {
		return "", fmt.Errorf("failed to get bill %s for email: %w", billID, err)
	}

	subject, htmlBody, err := renderStatement(bill)
	if err != nil {
		return "", err
	}

	messageID, err := s.emailSender.Send(ctx, recipientEmail, subject, htmlBody)
	if err != nil {
		return "", fmt.Errorf("failed to send statement for bill %s: %w", billID, err)
	}

	if err := s.billingRepo.MarkEmailSent(ctx, billID); err != nil {
		return "", fmt.Errorf("failed to mark bill %s as emailed: %w", billID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("bill statement emailed",
		"bill_id", billID,
		"recipient", recipientEmail,
		"email_id", messageID,
	)

	return messageID, nil
}
