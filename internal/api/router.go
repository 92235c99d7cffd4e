package api

import (
	"github.com/Conceptual-Machines/magda-scales/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/magda-scales/internal/api/middleware"
	"github.com/Conceptual-Machines/magda-scales/internal/config"
	"github.com/Conceptual-Machines/magda-scales/internal/metrics"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, cw *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cw))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, cw)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Scale engine routes v1 (public, read-only)
	v1 := router.Group("/api/v1")
	{
		scalesHandler := handlers.NewScalesHandler(cfg, cw)

		// Catalog
		v1.GET("/scales", scalesHandler.ListTypes)
		v1.GET("/scales/:type", scalesHandler.GetType)
		v1.GET("/scales/:type/modes/:token", scalesHandler.GetMode)

		// Spelling
		v1.GET("/chromatic", scalesHandler.Chromatic)
		v1.GET("/letters", scalesHandler.Letters)
		v1.GET("/shifted", scalesHandler.Shifted)
		v1.GET("/chords", scalesHandler.Chords)
		v1.GET("/respell", scalesHandler.Respell)
		v1.GET("/classify", scalesHandler.Classify)
	}

	return router
}
