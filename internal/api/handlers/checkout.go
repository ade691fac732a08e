package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/service"
	"github.com/jafarshop/storefront/pkg/errors"
)

// HandleCheckout handles POST /v1/checkout
func HandleCheckout(services *service.Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := cartFromRequest(c, logger)
		if !ok {
			return
		}

		receipt, err := services.Cart.Checkout(store)
		if err != nil {
			if errors.Is(err, errors.ErrEmptyCart) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to check out", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check out"})
			return
		}

		c.JSON(http.StatusOK, receipt)
	}
}
