package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/latadairy/dairy_backend/internal/apperrors"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
	"github.com/latadairy/dairy_backend/internal/dto"
	"github.com/latadairy/dairy_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// saleHandler handles HTTP requests related to daily credit sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes registers routes related to daily sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/daily-sales")
	{
		sales.POST("", h.createDailySale)
		sales.GET("", h.listDailySales)
		sales.GET("/:id", h.getDailySale)
		sales.PUT("/:id/payment", h.updateSalePayment)
		sales.DELETE("/:id", h.deleteDailySale)
	}
}

// createDailySale godoc
// @Summary Record a daily credit sale
// @Description Records a sale for a registered customer and adds the unpaid
// @Description portion to their outstanding balance
// @Tags daily-sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateDailySaleRequest true "Sale details"
// @Success 201 {object} dto.DailySaleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to record sale"
// @Router /daily-sales [post]
func (h *saleHandler) createDailySale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDailySaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createDailySale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + bindingErrorMessage(err)})
		return
	}

	sale, err := h.saleService.CreateDailySale(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		logger.Error("Failed to create daily sale", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToDailySaleResponse(sale))
}

// listDailySales godoc
// @Summary List daily sales
// @Description Lists daily sales, optionally filtered by customer and date.
// @Description An exact date takes precedence over the start/end range.
// @Tags daily-sales
// @Produce json
// @Param customer_id query string false "Customer ID"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param start_date query string false "Range start (YYYY-MM-DD, inclusive)"
// @Param end_date query string false "Range end (YYYY-MM-DD, inclusive)"
// @Success 200 {array} dto.DailySaleResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Router /daily-sales [get]
func (h *saleHandler) listDailySales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDailySalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + bindingErrorMessage(err)})
		return
	}

	sales, err := h.saleService.ListDailySales(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list daily sales", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailySaleResponses(sales))
}

// getDailySale godoc
// @Summary Get a daily sale by ID
// @Description Retrieves a single daily sale with its item lines
// @Tags daily-sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.DailySaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to retrieve sale"
// @Router /daily-sales/{id} [get]
func (h *saleHandler) getDailySale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	sale, err := h.saleService.GetDailySaleByID(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		logger.Error("Failed to get daily sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sale"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailySaleResponse(sale))
}

// updateSalePayment godoc
// @Summary Amend a sale's payment
// @Description Sets the sale's paid amount and moves the customer's balance
// @Description by the difference
// @Tags daily-sales
// @Produce json
// @Param id path string true "Sale ID"
// @Param paid_amount query number true "New paid amount"
// @Success 200 {object} dto.DailySaleResponse
// @Failure 400 {object} map[string]string "Invalid paid amount"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to update payment"
// @Router /daily-sales/{id}/payment [put]
func (h *saleHandler) updateSalePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	raw, ok := c.GetQuery("paid_amount")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paid_amount query parameter is required"})
		return
	}
	paidAmount, err := decimal.NewFromString(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paid_amount must be a decimal number"})
		return
	}

	sale, err := h.saleService.UpdateSalePayment(c.Request.Context(), saleID, paidAmount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		logger.Error("Failed to update sale payment", slog.String("sale_id", saleID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailySaleResponse(sale))
}

// deleteDailySale godoc
// @Summary Delete a daily sale
// @Description Removes the sale and backs its unpaid portion out of the
// @Description customer's balance
// @Tags daily-sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to delete sale"
// @Router /daily-sales/{id} [delete]
func (h *saleHandler) deleteDailySale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	if err := h.saleService.DeleteDailySale(c.Request.Context(), saleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		logger.Error("Failed to delete daily sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}
