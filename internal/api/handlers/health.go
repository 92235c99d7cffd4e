package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/magda-scales/internal/scales"
	"github.com/gin-gonic/gin"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"catalog": gin.H{
			"scale_types": len(scales.TypeNames()),
		},
	})
}
