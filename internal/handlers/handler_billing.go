package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/latadairy/dairy_backend/internal/apperrors"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
	"github.com/latadairy/dairy_backend/internal/dto"
	"github.com/latadairy/dairy_backend/internal/middleware"
)

// billingHandler handles HTTP requests related to monthly bills.
type billingHandler struct {
	billingService portssvc.BillingSvcFacade
}

func newBillingHandler(bs portssvc.BillingSvcFacade) *billingHandler {
	return &billingHandler{billingService: bs}
}

// registerBillingRoutes registers routes related to monthly billing.
func registerBillingRoutes(rg *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newBillingHandler(billingService)

	billing := rg.Group("/billing")
	{
		billing.GET("/monthly", h.listBillsByPeriod)
		billing.GET("/customer/:customer_id", h.listBillsByCustomer)
		billing.POST("/generate", h.generateBills)
		billing.GET("/:bill_id", h.getBillDetails)
		billing.POST("/send-email", h.sendBillEmail)
	}
}

// listBillsByPeriod godoc
// @Summary List bills for a month
// @Description Lists the snapshot bills generated for one (month, year) period
// @Tags billing
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {array} dto.MonthlyBillResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to list bills"
// @Router /billing/monthly [get]
func (h *billingHandler) listBillsByPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.BillingPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + bindingErrorMessage(err)})
		return
	}

	bills, err := h.billingService.ListBillsByPeriod(c.Request.Context(), params.Month, params.Year)
	if err != nil {
		logger.Error("Failed to list bills by period", slog.Int("month", params.Month), slog.Int("year", params.Year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bills"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyBillResponses(bills))
}

// listBillsByCustomer godoc
// @Summary List a customer's bills
// @Description Lists all snapshot bills for one customer, newest period first
// @Tags billing
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {array} dto.MonthlyBillResponse
// @Failure 500 {object} map[string]string "Failed to list bills"
// @Router /billing/customer/{customer_id} [get]
func (h *billingHandler) listBillsByCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customer_id")

	bills, err := h.billingService.ListBillsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		logger.Error("Failed to list bills by customer", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bills"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyBillResponses(bills))
}

// generateBills godoc
// @Summary Generate monthly bills
// @Description Generates one snapshot bill per active customer with sales in
// @Description the month. Regenerating a period overwrites existing snapshots
// @Description in place.
// @Tags billing
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} dto.GenerateBillsResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to generate bills"
// @Router /billing/generate [post]
func (h *billingHandler) generateBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.BillingPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + bindingErrorMessage(err)})
		return
	}

	bills, err := h.billingService.GenerateBills(c.Request.Context(), params.Month, params.Year)
	if err != nil {
		logger.Error("Failed to generate bills", slog.Int("month", params.Month), slog.Int("year", params.Year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate bills"})
		return
	}

	c.JSON(http.StatusOK, dto.GenerateBillsResponse{
		Message: fmt.Sprintf("Generated %d bills for %d/%d", len(bills), params.Month, params.Year),
		Bills:   dto.ToMonthlyBillResponses(bills),
	})
}

// getBillDetails godoc
// @Summary Get a bill with its sales
// @Description Retrieves a bill and the daily sales of its month, oldest first
// @Tags billing
// @Produce json
// @Param bill_id path string true "Bill ID"
// @Success 200 {object} dto.BillDetailsResponse
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to retrieve bill"
// @Router /billing/{bill_id} [get]
func (h *billingHandler) getBillDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("bill_id")

	bill, sales, err := h.billingService.GetBillDetails(c.Request.Context(), billID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		logger.Error("Failed to get bill details", slog.String("bill_id", billID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bill"})
		return
	}

	c.JSON(http.StatusOK, dto.BillDetailsResponse{
		Bill:  dto.ToMonthlyBillResponse(bill),
		Sales: dto.ToDailySaleResponses(sales),
	})
}

// sendBillEmail godoc
// @Summary Email a bill statement
// @Description Renders the bill's statement, emails it to the recipient and
// @Description marks the bill as sent
// @Tags billing
// @Accept json
// @Produce json
// @Param request body dto.SendBillEmailRequest true "Bill and recipient"
// @Success 200 {object} dto.EmailSentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to send email"
// @Router /billing/send-email [post]
func (h *billingHandler) sendBillEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SendBillEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + bindingErrorMessage(err)})
		return
	}

	emailID, err := h.billingService.SendBillEmail(c.Request.Context(), req.BillID, req.RecipientEmail)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		case errors.Is(err, apperrors.ErrEmailNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service not configured"})
		default:
			logger.Error("Failed to send bill email", slog.String("bill_id", req.BillID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.EmailSentResponse{
		Status:  "success",
		Message: fmt.Sprintf("Bill sent to %s", req.RecipientEmail),
		EmailID: emailID,
	})
}
