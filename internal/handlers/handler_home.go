package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Lata Dairy Management System API",
			"version": version,
		})
	}
}

// getHealth godoc
// @Summary API liveness check.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// registerHomeRoutes registers the API root and liveness routes.
func registerHomeRoutes(rg *gin.RouterGroup, version string) {
	rg.GET("/", getHome(version))
	rg.GET("/health", getHealth)
}
