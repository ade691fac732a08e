package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/cart"
	"github.com/jafarshop/storefront/pkg/errors"
)

// respondCatalogError maps catalog failures to a response
func respondCatalogError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	var notFound *errors.ErrNotFound
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Resource + " not found"})
		return
	}

	var unavailable *errors.ErrCatalogUnavailable
	if errors.As(err, &unavailable) {
		logger.Warn(msg, zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}

	logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// cartFromRequest returns the session cart, failing the request when the
// middleware chain did not provide one.
func cartFromRequest(c *gin.Context, logger *zap.Logger) (*cart.Store, bool) {
	store, err := cart.FromContext(c.Request.Context())
	if err != nil {
		logger.Error("Cart store missing from request context",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return nil, false
	}
	return store, true
}
