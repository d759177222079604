package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smartdropperofficial/taxapi/internal/api/handlers"
	"github.com/smartdropperofficial/taxapi/internal/api/middleware"
	"github.com/smartdropperofficial/taxapi/internal/config"
	"github.com/smartdropperofficial/taxapi/internal/crypto"
	"github.com/smartdropperofficial/taxapi/internal/repository"
	"github.com/smartdropperofficial/taxapi/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(
	cfg *config.Config,
	repos *repository.Repositories,
	taxService service.TaxService,
	submitter service.Submitter,
	decryptor *crypto.Decryptor,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Dashboard-facing routes: the encrypted envelope is the gate
		v1.POST("/tax-requests", handlers.HandleCreateTaxRequest(cfg, decryptor, submitter, logger))
		v1.POST("/decrypt", handlers.HandleDecrypt(decryptor))

		// Admin routes (require the admin API key)
		adminRoutes := v1.Group("/admin")
		adminRoutes.Use(middleware.AuthMiddleware(cfg.API, logger))
		{
			adminRoutes.GET("/orders", handlers.HandleListOrders(repos, logger))
			adminRoutes.GET("/orders/:order_id", handlers.HandleGetOrder(repos, logger))
			adminRoutes.POST("/orders/send-tax-requests", handlers.HandleSendTaxRequests(taxService, repos, logger))
			adminRoutes.POST("/orders/:order_id/retry-tax", handlers.HandleRetryTaxRequest(taxService, logger))
			adminRoutes.GET("/tax-requests/status", handlers.HandleTaxRequestStatuses(taxService))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
