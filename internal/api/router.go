package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/api/handlers"
	"github.com/jafarshop/storefront/internal/api/middleware"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/service"
	"github.com/jafarshop/storefront/internal/session"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, services *service.Services, sessions *session.Registry, logger *zap.Logger) *gin.Engine {
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
		// Catalog routes (no session needed)
		v1.GET("/products", handlers.HandleListProducts(services, logger))
		v1.GET("/products/:id", handlers.HandleGetProduct(services, logger))
		v1.GET("/categories", handlers.HandleListCategories(services, logger))

		// Cart routes (session scoped)
		cartRoutes := v1.Group("")
		cartRoutes.Use(middleware.SessionMiddleware(sessions, cfg.Session, logger))
		{
			cartRoutes.GET("/cart", handlers.HandleGetCart(services, logger))
			cartRoutes.DELETE("/cart", handlers.HandleClearCart(services, logger))
			cartRoutes.GET("/cart/events", handlers.HandleCartEvents(services, sessions, logger))
			cartRoutes.POST("/cart/items", handlers.HandleAddItem(services, logger))
			cartRoutes.PUT("/cart/items/:id", handlers.HandleSetQuantity(services, logger))
			cartRoutes.DELETE("/cart/items/:id", handlers.HandleRemoveItem(services, logger))
			cartRoutes.POST("/checkout", handlers.HandleCheckout(services, logger))
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
		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		}
		if id, ok := middleware.GetSessionID(c); ok {
			fields = append(fields, zap.String("session_id", id.String()))
		}
		logger.Info("HTTP request", fields...)
	}
}
