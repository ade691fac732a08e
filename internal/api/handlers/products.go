package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/service"
)

// HandleListProducts handles GET /v1/products
func HandleListProducts(services *service.Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter service.ProductFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if !filter.Sort.IsValid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": "sort must be asc or desc",
			})
			return
		}

		products, err := services.Catalog.ListProducts(c.Request.Context(), filter)
		if err != nil {
			respondCatalogError(c, logger, "Failed to list products", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"count":    len(products),
		})
	}
}

// HandleGetProduct handles GET /v1/products/:id
func HandleGetProduct(services *service.Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		product, err := services.Catalog.GetProduct(c.Request.Context(), id)
		if err != nil {
			respondCatalogError(c, logger, "Failed to get product", err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// HandleListCategories handles GET /v1/categories
func HandleListCategories(services *service.Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := services.Catalog.GetCategories(c.Request.Context())
		if err != nil {
			respondCatalogError(c, logger, "Failed to list categories", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}
