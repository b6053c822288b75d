package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
	"github.com/latadairy/dairy_backend/internal/dto"
	"github.com/latadairy/dairy_backend/internal/middleware"
)

// guestSaleHandler handles HTTP requests related to walk-in sales.
type guestSaleHandler struct {
	guestSaleService portssvc.GuestSaleSvcFacade
}

func newGuestSaleHandler(gs portssvc.GuestSaleSvcFacade) *guestSaleHandler {
	return &guestSaleHandler{guestSaleService: gs}
}

// registerGuestSaleRoutes registers routes related to guest sales.
func registerGuestSaleRoutes(rg *gin.RouterGroup, guestSaleService portssvc.GuestSaleSvcFacade) {
	h := newGuestSaleHandler(guestSaleService)

	sales := rg.Group("/guest-sales")
	{
		sales.POST("", h.createGuestSale)
		sales.GET("", h.listGuestSales)
	}
}

// createGuestSale godoc
// @Summary Record a walk-in sale
// @Description Records a guest sale dated today, settled in full at entry.
// @Description It never touches any customer balance.
// @Tags guest-sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateGuestSaleRequest true "Sale details"
// @Success 201 {object} dto.GuestSaleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record sale"
// @Router /guest-sales [post]
func (h *guestSaleHandler) createGuestSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGuestSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createGuestSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + bindingErrorMessage(err)})
		return
	}

	sale, err := h.guestSaleService.CreateGuestSale(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create guest sale", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToGuestSaleResponse(sale))
}

// listGuestSales godoc
// @Summary List walk-in sales
// @Description Lists guest sales, optionally filtered to an exact date, newest first
// @Tags guest-sales
// @Produce json
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Success 200 {array} dto.GuestSaleResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Router /guest-sales [get]
func (h *guestSaleHandler) listGuestSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListGuestSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + bindingErrorMessage(err)})
		return
	}

	sales, err := h.guestSaleService.ListGuestSales(c.Request.Context(), params.Date)
	if err != nil {
		logger.Error("Failed to list guest sales", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		return
	}

	c.JSON(http.StatusOK, dto.ToGuestSaleResponses(sales))
}
