package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/latadairy/dairy_backend/internal/apperrors"
	"github.com/latadairy/dairy_backend/internal/core/domain"
	portsrepo "github.com/latadairy/dairy_backend/internal/core/ports/repositories"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
	"github.com/latadairy/dairy_backend/internal/core/services"
	"github.com/latadairy/dairy_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) SaveDailySale(ctx context.Context, sale domain.DailySale, balanceDelta decimal.Decimal) error {
	args := m.Called(ctx, sale, balanceDelta)
	return args.Error(0)
}

func (m *MockSaleRepository) FindDailySaleByID(ctx context.Context, saleID string) (*domain.DailySale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySale), args.Error(1)
}

func (m *MockSaleRepository) FindDailySales(ctx context.Context, filter portsrepo.DailySaleFilter) ([]domain.DailySale, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailySale), args.Error(1)
}

func (m *MockSaleRepository) FindSalesInWindow(ctx context.Context, customerID, start, end string) ([]domain.DailySale, error) {
	args := m.Called(ctx, customerID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailySale), args.Error(1)
}

func (m *MockSaleRepository) UpdateSalePayment(ctx context.Context, saleID, customerID string, paidAmount decimal.Decimal, isPaid bool, balanceDelta decimal.Decimal) error {
	args := m.Called(ctx, saleID, customerID, paidAmount, isPaid, balanceDelta)
	return args.Error(0)
}

func (m *MockSaleRepository) DeleteDailySale(ctx context.Context, saleID, customerID string, balanceDelta decimal.Decimal) error {
	args := m.Called(ctx, saleID, customerID, balanceDelta)
	return args.Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomers(ctx context.Context, activeOnly bool) ([]domain.Customer, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// --- Test Suite ---
type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo     *MockSaleRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.SaleSvcFacade
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewSaleService(suite.mockSaleRepo, suite.mockCustomerRepo)
}

func itemReq(total int64) dto.SaleItemRequest {
	return dto.SaleItemRequest{
		ProductID:   uuid.NewString(),
		ProductName: "Full Cream Milk",
		Quantity:    decimal.NewFromInt(2),
		Unit:        "liter",
		Price:       decimal.NewFromInt(total / 2),
		Total:       decimal.NewFromInt(total),
	}
}

// A 100 sale with 60 paid must hit the customer's balance with +40.
func (suite *SaleServiceTestSuite) TestCreateDailySale_PartialPayment() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).
		Return(&domain.Customer{CustomerID: customerID, Name: "Anita Sharma"}, nil).Once()

	suite.mockSaleRepo.On("SaveDailySale", ctx,
		mock.MatchedBy(func(s domain.DailySale) bool {
			return s.CustomerID == customerID &&
				s.CustomerName == "Anita Sharma" &&
				s.TotalAmount.Equal(decimal.NewFromInt(100)) &&
				s.PaidAmount.Equal(decimal.NewFromInt(60)) &&
				!s.IsPaid
		}),
		mock.MatchedBy(func(delta decimal.Decimal) bool {
			return delta.Equal(decimal.NewFromInt(40))
		}),
	).Return(nil).Once()

	sale, err := suite.service.CreateDailySale(ctx, dto.CreateDailySaleRequest{
		CustomerID: customerID,
		Date:       "2026-08-15",
		Items:      []dto.SaleItemRequest{itemReq(100)},
		PaidAmount: decimal.NewFromInt(60),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.Equal("2026-08-15", sale.Date)
	suite.True(sale.Outstanding().Equal(decimal.NewFromInt(40)))
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

// Paying exactly the total marks the sale paid and adds nothing to the balance.
func (suite *SaleServiceTestSuite) TestCreateDailySale_FullyPaid() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).
		Return(&domain.Customer{CustomerID: customerID, Name: "Anita Sharma"}, nil).Once()

	suite.mockSaleRepo.On("SaveDailySale", ctx,
		mock.MatchedBy(func(s domain.DailySale) bool { return s.IsPaid }),
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.IsZero() }),
	).Return(nil).Once()

	sale, err := suite.service.CreateDailySale(ctx, dto.CreateDailySaleRequest{
		CustomerID: customerID,
		Date:       "2026-08-15",
		Items:      []dto.SaleItemRequest{itemReq(100)},
		PaidAmount: decimal.NewFromInt(100),
	})

	suite.Require().NoError(err)
	suite.True(sale.IsPaid)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateDailySale_CustomerNotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).
		Return(nil, apperrors.ErrNotFound).Once()

	sale, err := suite.service.CreateDailySale(ctx, dto.CreateDailySaleRequest{
		CustomerID: customerID,
		Date:       "2026-08-15",
		Items:      []dto.SaleItemRequest{itemReq(100)},
	})

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveDailySale")
}

// Amending a 60-paid sale of 100 up to fully paid moves the balance by -40.
func (suite *SaleServiceTestSuite) TestUpdateSalePayment_SettlesBalance() {
	ctx := context.Background()
	saleID := uuid.NewString()
	customerID := uuid.NewString()

	suite.mockSaleRepo.On("FindDailySaleByID", ctx, saleID).
		Return(&domain.DailySale{
			SaleID:      saleID,
			CustomerID:  customerID,
			TotalAmount: decimal.NewFromInt(100),
			PaidAmount:  decimal.NewFromInt(60),
		}, nil).Once()

	suite.mockSaleRepo.On("UpdateSalePayment", ctx, saleID, customerID,
		mock.MatchedBy(func(paid decimal.Decimal) bool { return paid.Equal(decimal.NewFromInt(100)) }),
		true,
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.Equal(decimal.NewFromInt(-40)) }),
	).Return(nil).Once()

	sale, err := suite.service.UpdateSalePayment(ctx, saleID, decimal.NewFromInt(100))

	suite.Require().NoError(err)
	suite.True(sale.IsPaid)
	suite.True(sale.PaidAmount.Equal(decimal.NewFromInt(100)))
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

// Reverting a payment grows the balance back by the amount reverted.
func (suite *SaleServiceTestSuite) TestUpdateSalePayment_Revert() {
	ctx := context.Background()
	saleID := uuid.NewString()
	customerID := uuid.NewString()

	suite.mockSaleRepo.On("FindDailySaleByID", ctx, saleID).
		Return(&domain.DailySale{
			SaleID:      saleID,
			CustomerID:  customerID,
			TotalAmount: decimal.NewFromInt(100),
			PaidAmount:  decimal.NewFromInt(100),
			IsPaid:      true,
		}, nil).Once()

	suite.mockSaleRepo.On("UpdateSalePayment", ctx, saleID, customerID,
		mock.MatchedBy(func(paid decimal.Decimal) bool { return paid.IsZero() }),
		false,
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.Equal(decimal.NewFromInt(100)) }),
	).Return(nil).Once()

	sale, err := suite.service.UpdateSalePayment(ctx, saleID, decimal.Zero)

	suite.Require().NoError(err)
	suite.False(sale.IsPaid)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

// Deleting an unpaid sale backs its outstanding portion out of the balance.
func (suite *SaleServiceTestSuite) TestDeleteDailySale_BacksOutOutstanding() {
	ctx := context.Background()
	saleID := uuid.NewString()
	customerID := uuid.NewString()

	suite.mockSaleRepo.On("FindDailySaleByID", ctx, saleID).
		Return(&domain.DailySale{
			SaleID:      saleID,
			CustomerID:  customerID,
			TotalAmount: decimal.NewFromInt(100),
			PaidAmount:  decimal.NewFromInt(60),
		}, nil).Once()

	suite.mockSaleRepo.On("DeleteDailySale", ctx, saleID, customerID,
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.Equal(decimal.NewFromInt(-40)) }),
	).Return(nil).Once()

	err := suite.service.DeleteDailySale(ctx, saleID)

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

// Deleting a fully paid sale must not move the balance at all.
func (suite *SaleServiceTestSuite) TestDeleteDailySale_PaidSaleLeavesBalance() {
	ctx := context.Background()
	saleID := uuid.NewString()
	customerID := uuid.NewString()

	suite.mockSaleRepo.On("FindDailySaleByID", ctx, saleID).
		Return(&domain.DailySale{
			SaleID:      saleID,
			CustomerID:  customerID,
			TotalAmount: decimal.NewFromInt(100),
			PaidAmount:  decimal.NewFromInt(100),
			IsPaid:      true,
		}, nil).Once()

	suite.mockSaleRepo.On("DeleteDailySale", ctx, saleID, customerID,
		mock.MatchedBy(func(delta decimal.Decimal) bool { return delta.IsZero() }),
	).Return(nil).Once()

	err := suite.service.DeleteDailySale(ctx, saleID)

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestListDailySales_PassesFilter() {
	ctx := context.Background()
	customerID := uuid.NewString()

	expected := []domain.DailySale{{SaleID: uuid.NewString(), CustomerID: customerID}}
	suite.mockSaleRepo.On("FindDailySales", ctx, portsrepo.DailySaleFilter{
		CustomerID: customerID,
		StartDate:  "2026-08-01",
		EndDate:    "2026-08-31",
	}).Return(expected, nil).Once()

	sales, err := suite.service.ListDailySales(ctx, dto.ListDailySalesParams{
		CustomerID: customerID,
		StartDate:  "2026-08-01",
		EndDate:    "2026-08-31",
	})

	suite.Require().NoError(err)
	suite.Equal(expected, sales)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
