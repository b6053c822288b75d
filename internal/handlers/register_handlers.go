package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/latadairy/dairy_backend/cmd/docs"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
	"github.com/latadairy/dairy_backend/pkg/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIRoutes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific entity
// route registrations.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	api := r.Group("/api")

	registerHomeRoutes(api, cfg.AppVersion)
	registerProductRoutes(api, service.Product)
	registerCustomerRoutes(api, service.Customer)
	registerSaleRoutes(api, service.Sale)
	registerGuestSaleRoutes(api, service.GuestSale)
	registerBillingRoutes(api, service.Billing)
	registerDashboardRoutes(api, service.Reporting)
	registerEmailRoutes(api, service.Email)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
