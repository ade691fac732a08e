package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/api/middleware"
	"github.com/jafarshop/storefront/internal/service"
	"github.com/jafarshop/storefront/internal/session"
)

// HandleGetCart handles GET /v1/cart
func HandleGetCart(services *service.Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := cartFromRequest(c, logger)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, services.Cart.View(store.Snapshot()))
	}
}

// HandleAddItem handles POST /v1/cart/items
func HandleAddItem(services *service.Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := cartFromRequest(c, logger)
		if !ok {
			return
		}

		var req service.AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if _, err := services.Cart.AddProduct(c.Request.Context(), store, req.ProductID); err != nil {
			respondCatalogError(c, logger, "Failed to add product to cart", err)
			return
		}

		c.JSON(http.StatusOK, services.Cart.View(store.Snapshot()))
	}
}

// HandleSetQuantity handles PUT /v1/cart/items/:id
func HandleSetQuantity(services *service.Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := cartFromRequest(c, logger)
		if !ok {
			return
		}

		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		var req service.SetQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		store.SetQuantity(productID, *req.Quantity)

		c.JSON(http.StatusOK, services.Cart.View(store.Snapshot()))
	}
}

// HandleRemoveItem handles DELETE /v1/cart/items/:id
func HandleRemoveItem(services *service.Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := cartFromRequest(c, logger)
		if !ok {
			return
		}

		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		store.RemoveItem(productID)

		c.JSON(http.StatusOK, services.Cart.View(store.Snapshot()))
	}
}

// HandleClearCart handles DELETE /v1/cart
func HandleClearCart(services *service.Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := cartFromRequest(c, logger)
		if !ok {
			return
		}

		store.Clear()

		c.JSON(http.StatusOK, services.Cart.View(store.Snapshot()))
	}
}

// HandleCartEvents handles GET /v1/cart/events. It streams a "cart" event with
// the current cart, then the newest cart after each mutation until the client
// goes away. A slow client skips intermediate versions, never the latest one.
// The session is kept alive while the stream is open.
func HandleCartEvents(services *service.Services, sessions *session.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := cartFromRequest(c, logger)
		if !ok {
			return
		}

		if id, ok := middleware.GetSessionID(c); ok {
			release := sessions.Hold(id)
			defer release()
		}

		updates := newLatestSnapshot()
		unsubscribe := store.Subscribe(updates.offer)
		defer unsubscribe()

		initial := store.Snapshot()
		sent := initial.Version

		c.Header("Cache-Control", "no-cache")
		c.SSEvent("cart", services.Cart.View(initial))
		c.Writer.Flush()

		c.Stream(func(w io.Writer) bool {
			select {
			case <-c.Request.Context().Done():
				return false
			case <-updates.ready:
				if s, ok := updates.newerThan(sent); ok {
					sent = s.Version
					c.SSEvent("cart", services.Cart.View(s))
				}
				return true
			}
		})
	}
}
