package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/latadairy/dairy_backend/internal/apperrors"
	"github.com/latadairy/dairy_backend/internal/core/domain"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
	"github.com/latadairy/dairy_backend/internal/dto"
	"github.com/latadairy/dairy_backend/internal/handlers"
	"github.com/latadairy/dairy_backend/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) CreateDailySale(ctx context.Context, req dto.CreateDailySaleRequest) (*domain.DailySale, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySale), args.Error(1)
}

func (m *MockSaleService) GetDailySaleByID(ctx context.Context, saleID string) (*domain.DailySale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySale), args.Error(1)
}

func (m *MockSaleService) ListDailySales(ctx context.Context, params dto.ListDailySalesParams) ([]domain.DailySale, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailySale), args.Error(1)
}

func (m *MockSaleService) UpdateSalePayment(ctx context.Context, saleID string, paidAmount decimal.Decimal) (*domain.DailySale, error) {
	args := m.Called(ctx, saleID, paidAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySale), args.Error(1)
}

func (m *MockSaleService) DeleteDailySale(ctx context.Context, saleID string) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// newTestRouter wires the full route table around the given container.
// Swagger stays off; the tests only hit API routes.
func newTestRouter(container *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{AppVersion: "test", IsProduction: true}
	handlers.RegisterRoutes(router, cfg, container)
	return router
}

// --- Test Suite ---
type SaleHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockSaleService *MockSaleService
}

func (suite *SaleHandlerTestSuite) SetupTest() {
	suite.mockSaleService = new(MockSaleService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{Sale: suite.mockSaleService})
}

func (suite *SaleHandlerTestSuite) TestCreateDailySale_Success() {
	customerID := uuid.NewString()
	req := dto.CreateDailySaleRequest{
		CustomerID: customerID,
		Date:       "2026-08-15",
		Items: []dto.SaleItemRequest{{
			ProductID:   uuid.NewString(),
			ProductName: "Full Cream Milk",
			Quantity:    decimal.NewFromInt(2),
			Unit:        "liter",
			Price:       decimal.NewFromInt(50),
			Total:       decimal.NewFromInt(100),
		}},
		PaidAmount: decimal.NewFromInt(60),
	}

	returned := &domain.DailySale{
		SaleID:      uuid.NewString(),
		CustomerID:  customerID,
		Date:        req.Date,
		TotalAmount: decimal.NewFromInt(100),
		PaidAmount:  decimal.NewFromInt(60),
	}
	suite.mockSaleService.On("CreateDailySale", mock.Anything, mock.AnythingOfType("dto.CreateDailySaleRequest")).
		Return(returned, nil).Once()

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/daily-sales", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.DailySaleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(returned.SaleID, resp.ID)
	suite.True(resp.TotalAmount.Equal(decimal.NewFromInt(100)))
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestCreateDailySale_MissingItems() {
	body := []byte(fmt.Sprintf(`{"customer_id": %q, "date": "2026-08-15", "items": []}`, uuid.NewString()))

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/daily-sales", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "CreateDailySale")
}

func (suite *SaleHandlerTestSuite) TestCreateDailySale_CustomerNotFound() {
	req := dto.CreateDailySaleRequest{
		CustomerID: uuid.NewString(),
		Date:       "2026-08-15",
		Items: []dto.SaleItemRequest{{
			ProductID:   uuid.NewString(),
			ProductName: "Paneer",
			Quantity:    decimal.NewFromInt(1),
			Total:       decimal.NewFromInt(80),
		}},
	}
	suite.mockSaleService.On("CreateDailySale", mock.Anything, mock.AnythingOfType("dto.CreateDailySaleRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/daily-sales", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SaleHandlerTestSuite) TestListDailySales_ForwardsFilter() {
	customerID := uuid.NewString()
	suite.mockSaleService.On("ListDailySales", mock.Anything, dto.ListDailySalesParams{
		CustomerID: customerID,
		StartDate:  "2026-08-01",
		EndDate:    "2026-08-31",
	}).Return([]domain.DailySale{}, nil).Once()

	w := httptest.NewRecorder()
	url := fmt.Sprintf("/api/daily-sales?customer_id=%s&start_date=2026-08-01&end_date=2026-08-31", customerID)
	httpReq, _ := http.NewRequest(http.MethodGet, url, nil)
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestUpdateSalePayment_Success() {
	saleID := uuid.NewString()
	returned := &domain.DailySale{
		SaleID:      saleID,
		TotalAmount: decimal.NewFromInt(100),
		PaidAmount:  decimal.NewFromInt(100),
		IsPaid:      true,
	}

	suite.mockSaleService.On("UpdateSalePayment", mock.Anything, saleID,
		mock.MatchedBy(func(paid decimal.Decimal) bool { return paid.Equal(decimal.NewFromInt(100)) }),
	).Return(returned, nil).Once()

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPut, "/api/daily-sales/"+saleID+"/payment?paid_amount=100", nil)
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DailySaleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsPaid)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestUpdateSalePayment_BadAmount() {
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPut, "/api/daily-sales/"+uuid.NewString()+"/payment?paid_amount=abc", nil)
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "UpdateSalePayment")
}

func (suite *SaleHandlerTestSuite) TestUpdateSalePayment_MissingAmount() {
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPut, "/api/daily-sales/"+uuid.NewString()+"/payment", nil)
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "UpdateSalePayment")
}

func (suite *SaleHandlerTestSuite) TestDeleteDailySale_NotFound() {
	saleID := uuid.NewString()
	suite.mockSaleService.On("DeleteDailySale", mock.Anything, saleID).
		Return(apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodDelete, "/api/daily-sales/"+saleID, nil)
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestSaleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}
