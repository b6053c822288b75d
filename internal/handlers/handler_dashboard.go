package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
	"github.com/latadairy/dairy_backend/internal/dto"
	"github.com/latadairy/dairy_backend/internal/middleware"
)

// dashboardHandler handles HTTP requests for the dashboard aggregates.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// registerDashboardRoutes registers routes related to dashboard reporting.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getStats)
		dashboard.GET("/sales-chart", h.getSalesChart)
		dashboard.GET("/top-customers", h.getTopCustomers)
		dashboard.GET("/top-products", h.getTopProducts)
	}
}

// getStats godoc
// @Summary Dashboard summary stats
// @Description Today's and this month's revenue and transaction counts, the
// @Description total outstanding balance and active entity counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Failure 500 {object} map[string]string "Failed to compute stats"
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.reportingService.GetDashboardStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getSalesChart godoc
// @Summary Revenue chart series
// @Description One point per calendar day for the last N days through today,
// @Description oldest first. Days without sales appear as zero points.
// @Tags dashboard
// @Produce json
// @Param days query int false "Number of days back from today" default(7)
// @Success 200 {array} domain.ChartPoint
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build chart"
// @Router /dashboard/sales-chart [get]
func (h *dashboardHandler) getSalesChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SalesChartParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + bindingErrorMessage(err)})
		return
	}

	points, err := h.reportingService.GetSalesChart(c.Request.Context(), params.Days)
	if err != nil {
		logger.Error("Failed to build sales chart", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build chart"})
		return
	}

	c.JSON(http.StatusOK, points)
}

// getTopCustomers godoc
// @Summary Top customers this month
// @Description Ranks this month's customers by purchase total, descending
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum rows" default(5)
// @Success 200 {array} domain.CustomerRanking
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to rank customers"
// @Router /dashboard/top-customers [get]
func (h *dashboardHandler) getTopCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TopListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + bindingErrorMessage(err)})
		return
	}

	rankings, err := h.reportingService.GetTopCustomers(c.Request.Context(), params.Limit)
	if err != nil {
		logger.Error("Failed to rank top customers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank customers"})
		return
	}

	c.JSON(http.StatusOK, rankings)
}

// getTopProducts godoc
// @Summary Top products this month
// @Description Ranks this month's products by item revenue over daily sales
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum rows" default(5)
// @Success 200 {array} domain.ProductRanking
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to rank products"
// @Router /dashboard/top-products [get]
func (h *dashboardHandler) getTopProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TopListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + bindingErrorMessage(err)})
		return
	}

	rankings, err := h.reportingService.GetTopProducts(c.Request.Context(), params.Limit)
	if err != nil {
		logger.Error("Failed to rank top products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank products"})
		return
	}

	c.JSON(http.StatusOK, rankings)
}
