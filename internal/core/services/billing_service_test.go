package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/latadairy/dairy_backend/internal/apperrors"
	"github.com/latadairy/dairy_backend/internal/core/domain"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
	"github.com/latadairy/dairy_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BillingRepository ---
type MockBillingRepository struct {
	mock.Mock
}

func (m *MockBillingRepository) FindBillsByPeriod(ctx context.Context, month, year int) ([]domain.MonthlyBill, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyBill), args.Error(1)
}

func (m *MockBillingRepository) FindBillsByCustomer(ctx context.Context, customerID string) ([]domain.MonthlyBill, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyBill), args.Error(1)
}

func (m *MockBillingRepository) FindBillByID(ctx context.Context, billID string) (*domain.MonthlyBill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyBill), args.Error(1)
}

func (m *MockBillingRepository) UpsertBill(ctx context.Context, bill domain.MonthlyBill) (*domain.MonthlyBill, error) {
	args := m.Called(ctx, bill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyBill), args.Error(1)
}

func (m *MockBillingRepository) MarkEmailSent(ctx context.Context, billID string) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

// --- Mock EmailSender ---
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.String(0), args.Error(1)
}

// --- Test Suite ---
type BillingServiceTestSuite struct {
	suite.Suite
	mockBillingRepo  *MockBillingRepository
	mockSaleRepo     *MockSaleRepository
	mockCustomerRepo *MockCustomerRepository
	mockSender       *MockEmailSender
	service          portssvc.BillingSvcFacade
}

func (suite *BillingServiceTestSuite) SetupTest() {
	suite.mockBillingRepo = new(MockBillingRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockSender = new(MockEmailSender)
	suite.service = services.NewBillingService(
		suite.mockBillingRepo, suite.mockSaleRepo, suite.mockCustomerRepo, suite.mockSender,
	)
}

// Customers without sales in the month are skipped, not billed at zero.
func (suite *BillingServiceTestSuite) TestGenerateBills_SkipsCustomersWithoutSales() {
	ctx := context.Background()
	active := domain.Customer{CustomerID: uuid.NewString(), Name: "Anita Sharma"}
	idle := domain.Customer{CustomerID: uuid.NewString(), Name: "Ravi Patel"}

	suite.mockCustomerRepo.On("FindCustomers", ctx, true).
		Return([]domain.Customer{active, idle}, nil).Once()

	sales := []domain.DailySale{
		{TotalAmount: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(60)},
		{TotalAmount: decimal.NewFromInt(50), PaidAmount: decimal.NewFromInt(50)},
	}
	suite.mockSaleRepo.On("FindSalesInWindow", ctx, active.CustomerID, "2026-08-01", "2026-09-01").
		Return(sales, nil).Once()
	suite.mockSaleRepo.On("FindSalesInWindow", ctx, idle.CustomerID, "2026-08-01", "2026-09-01").
		Return([]domain.DailySale{}, nil).Once()

	suite.mockBillingRepo.On("UpsertBill", ctx, mock.MatchedBy(func(b domain.MonthlyBill) bool {
		return b.CustomerID == active.CustomerID &&
			b.Month == 8 && b.Year == 2026 &&
			b.TotalSales.Equal(decimal.NewFromInt(150)) &&
			b.TotalPaid.Equal(decimal.NewFromInt(110)) &&
			b.BalanceDue.Equal(decimal.NewFromInt(40)) &&
			b.SalesCount == 2
	})).Return(&domain.MonthlyBill{BillID: uuid.NewString(), CustomerID: active.CustomerID}, nil).Once()

	bills, err := suite.service.GenerateBills(ctx, 8, 2026)

	suite.Require().NoError(err)
	suite.Len(bills, 1)
	suite.Equal(active.CustomerID, bills[0].CustomerID)
	suite.mockBillingRepo.AssertExpectations(suite.T())
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

// A December run must roll the window end over to January 1 of the next year.
func (suite *BillingServiceTestSuite) TestGenerateBills_DecemberWindow() {
	ctx := context.Background()
	customer := domain.Customer{CustomerID: uuid.NewString(), Name: "Anita Sharma"}

	suite.mockCustomerRepo.On("FindCustomers", ctx, true).
		Return([]domain.Customer{customer}, nil).Once()
	suite.mockSaleRepo.On("FindSalesInWindow", ctx, customer.CustomerID, "2026-12-01", "2027-01-01").
		Return([]domain.DailySale{}, nil).Once()

	bills, err := suite.service.GenerateBills(ctx, 12, 2026)

	suite.Require().NoError(err)
	suite.Empty(bills)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestGetBillDetails_LoadsWindowSales() {
	ctx := context.Background()
	bill := &domain.MonthlyBill{
		BillID:     uuid.NewString(),
		CustomerID: uuid.NewString(),
		Month:      8,
		Year:       2026,
	}
	sales := []domain.DailySale{{SaleID: uuid.NewString(), CustomerID: bill.CustomerID}}

	suite.mockBillingRepo.On("FindBillByID", ctx, bill.BillID).Return(bill, nil).Once()
	suite.mockSaleRepo.On("FindSalesInWindow", ctx, bill.CustomerID, "2026-08-01", "2026-09-01").
		Return(sales, nil).Once()

	gotBill, gotSales, err := suite.service.GetBillDetails(ctx, bill.BillID)

	suite.Require().NoError(err)
	suite.Equal(bill, gotBill)
	suite.Equal(sales, gotSales)
}

func (suite *BillingServiceTestSuite) TestSendBillEmail_MarksSentAfterDelivery() {
	ctx := context.Background()
	bill := &domain.MonthlyBill{
		BillID:       uuid.NewString(),
		CustomerID:   uuid.NewString(),
		CustomerName: "Anita Sharma",
		Month:        8,
		Year:         2026,
		TotalSales:   decimal.NewFromInt(150),
		TotalPaid:    decimal.NewFromInt(110),
		BalanceDue:   decimal.NewFromInt(40),
		SalesCount:   2,
	}

	suite.mockBillingRepo.On("FindBillByID", ctx, bill.BillID).Return(bill, nil).Once()
	suite.mockSender.On("Send", ctx, "anita@example.com",
		"Lata Dairy - Bill Statement for August 2026",
		mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "Anita Sharma") &&
				strings.Contains(body, "150.00") &&
				strings.Contains(body, "40.00")
		}),
	).Return("msg-123", nil).Once()
	suite.mockBillingRepo.On("MarkEmailSent", ctx, bill.BillID).Return(nil).Once()

	messageID, err := suite.service.SendBillEmail(ctx, bill.BillID, "anita@example.com")

	suite.Require().NoError(err)
	suite.Equal("msg-123", messageID)
	suite.mockBillingRepo.AssertExpectations(suite.T())
	suite.mockSender.AssertExpectations(suite.T())
}

// A delivery failure must leave the bill's sent flag alone.
func (suite *BillingServiceTestSuite) TestSendBillEmail_NotConfigured() {
	ctx := context.Background()
	bill := &domain.MonthlyBill{BillID: uuid.NewString(), Month: 8, Year: 2026}

	suite.mockBillingRepo.On("FindBillByID", ctx, bill.BillID).Return(bill, nil).Once()
	suite.mockSender.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return("", apperrors.ErrEmailNotConfigured).Once()

	messageID, err := suite.service.SendBillEmail(ctx, bill.BillID, "anita@example.com")

	suite.Require().Error(err)
	suite.Empty(messageID)
	suite.ErrorIs(err, apperrors.ErrEmailNotConfigured)
	suite.mockBillingRepo.AssertNotCalled(suite.T(), "MarkEmailSent")
}

func (suite *BillingServiceTestSuite) TestSendBillEmail_BillNotFound() {
	ctx := context.Background()
	billID := uuid.NewString()

	suite.mockBillingRepo.On("FindBillByID", ctx, billID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SendBillEmail(ctx, billID, "anita@example.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSender.AssertNotCalled(suite.T(), "Send")
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}
