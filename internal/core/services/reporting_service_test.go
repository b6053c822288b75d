package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
	"github.com/latadairy/dairy_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) DayTotals(ctx context.Context, date string) (decimal.Decimal, int, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(decimal.Decimal), args.Int(1), args.Error(2)
}

func (m *MockReportingRepository) WindowTotals(ctx context.Context, start, end string) (decimal.Decimal, int, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(decimal.Decimal), args.Int(1), args.Error(2)
}

func (m *MockReportingRepository) TotalOutstanding(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) CountActiveCustomers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) CountActiveProducts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) DailyTotalsSeries(ctx context.Context, start, end string) ([]domain.ChartPoint, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartPoint), args.Error(1)
}

func (m *MockReportingRepository) TopCustomers(ctx context.Context, start, end string, limit int) ([]domain.CustomerRanking, error) {
	args := m.Called(ctx, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerRanking), args.Error(1)
}

func (m *MockReportingRepository) TopProducts(ctx context.Context, start, end string, limit int) ([]domain.ProductRanking, error) {
	args := m.Called(ctx, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductRanking), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvcFacade
}

// fixedNow pins the dashboard clock to Saturday 2026-08-15 UTC.
var fixedNow = time.Date(2026, time.August, 15, 10, 30, 0, 0, time.UTC)

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo,
		services.WithClock(func() time.Time { return fixedNow }),
	)
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats() {
	ctx := context.Background()

	suite.mockRepo.On("DayTotals", ctx, "2026-08-15").
		Return(decimal.NewFromInt(250), 3, nil).Once()
	suite.mockRepo.On("WindowTotals", ctx, "2026-08-01", "2026-09-01").
		Return(decimal.NewFromInt(4200), 40, nil).Once()
	suite.mockRepo.On("TotalOutstanding", ctx).
		Return(decimal.NewFromInt(1300), nil).Once()
	suite.mockRepo.On("CountActiveCustomers", ctx).Return(12, nil).Once()
	suite.mockRepo.On("CountActiveProducts", ctx).Return(7, nil).Once()

	stats, err := suite.service.GetDashboardStats(ctx)

	suite.Require().NoError(err)
	suite.True(stats.TodayRevenue.Equal(decimal.NewFromInt(250)))
	suite.Equal(3, stats.TodayTransactions)
	suite.True(stats.MonthRevenue.Equal(decimal.NewFromInt(4200)))
	suite.Equal(40, stats.MonthSalesCount)
	suite.True(stats.TotalOutstanding.Equal(decimal.NewFromInt(1300)))
	suite.Equal(12, stats.TotalCustomers)
	suite.Equal(7, stats.TotalProducts)
	suite.mockRepo.AssertExpectations(suite.T())
}

// Days without sales appear as zero points; the chart always runs oldest to
// newest and ends today.
func (suite *ReportingServiceTestSuite) TestGetSalesChart_ZeroFillsGaps() {
	ctx := context.Background()

	suite.mockRepo.On("DailyTotalsSeries", ctx, "2026-08-13", "2026-08-15").
		Return([]domain.ChartPoint{
			{Date: "2026-08-13", Revenue: decimal.NewFromInt(120), Transactions: 2},
			{Date: "2026-08-15", Revenue: decimal.NewFromInt(80), Transactions: 1},
		}, nil).Once()

	points, err := suite.service.GetSalesChart(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(points, 3)

	suite.Equal("2026-08-13", points[0].Date)
	suite.Equal("Thu", points[0].Day)
	suite.True(points[0].Revenue.Equal(decimal.NewFromInt(120)))

	suite.Equal("2026-08-14", points[1].Date)
	suite.Equal("Fri", points[1].Day)
	suite.True(points[1].Revenue.IsZero())
	suite.Zero(points[1].Transactions)

	suite.Equal("2026-08-15", points[2].Date)
	suite.Equal("Sat", points[2].Day)
	suite.True(points[2].Revenue.Equal(decimal.NewFromInt(80)))
}

// days=0 still yields a single point for today.
func (suite *ReportingServiceTestSuite) TestGetSalesChart_ZeroDays() {
	ctx := context.Background()

	suite.mockRepo.On("DailyTotalsSeries", ctx, "2026-08-15", "2026-08-15").
		Return([]domain.ChartPoint{}, nil).Once()

	points, err := suite.service.GetSalesChart(ctx, 0)

	suite.Require().NoError(err)
	suite.Require().Len(points, 1)
	suite.Equal("2026-08-15", points[0].Date)
	suite.True(points[0].Revenue.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetTopCustomers_UsesCurrentMonthWindow() {
	ctx := context.Background()
	rankings := []domain.CustomerRanking{
		{CustomerID: "c1", CustomerName: "Anita Sharma", TotalPurchases: decimal.NewFromInt(900), PurchaseCount: 9},
	}

	suite.mockRepo.On("TopCustomers", ctx, "2026-08-01", "2026-09-01", 5).
		Return(rankings, nil).Once()

	got, err := suite.service.GetTopCustomers(ctx, 5)

	suite.Require().NoError(err)
	suite.Equal(rankings, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetTopProducts_UsesCurrentMonthWindow() {
	ctx := context.Background()
	rankings := []domain.ProductRanking{
		{ProductID: "p1", ProductName: "Full Cream Milk", TotalQuantity: decimal.NewFromInt(60), TotalRevenue: decimal.NewFromInt(3000)},
	}

	suite.mockRepo.On("TopProducts", ctx, "2026-08-01", "2026-09-01", 3).
		Return(rankings, nil).Once()

	got, err := suite.service.GetTopProducts(ctx, 3)

	suite.Require().NoError(err)
	suite.Equal(rankings, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

// A zero limit short-circuits to an empty ranking without touching the store.
func (suite *ReportingServiceTestSuite) TestGetTopCustomers_ZeroLimitIsEmpty() {
	got, err := suite.service.GetTopCustomers(context.Background(), 0)

	suite.Require().NoError(err)
	suite.Empty(got)
	suite.mockRepo.AssertNotCalled(suite.T(), "TopCustomers",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestGetTopProducts_ZeroLimitIsEmpty() {
	got, err := suite.service.GetTopProducts(context.Background(), 0)

	suite.Require().NoError(err)
	suite.Empty(got)
	suite.mockRepo.AssertNotCalled(suite.T(), "TopProducts",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// A limit above the number of ranked customers returns them all, unpadded.
func (suite *ReportingServiceTestSuite) TestGetTopCustomers_LimitAboveGroupCount() {
	ctx := context.Background()
	rankings := []domain.CustomerRanking{
		{CustomerID: "c1", CustomerName: "Anita Sharma", TotalPurchases: decimal.NewFromInt(900), PurchaseCount: 9},
		{CustomerID: "c2", CustomerName: "Ravi Patel", TotalPurchases: decimal.NewFromInt(400), PurchaseCount: 4},
	}

	suite.mockRepo.On("TopCustomers", ctx, "2026-08-01", "2026-09-01", 50).
		Return(rankings, nil).Once()

	got, err := suite.service.GetTopCustomers(ctx, 50)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Equal(rankings, got)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
