package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/catalog"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/format"
	"github.com/jafarshop/storefront/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/find-product/main.go <text> [category]")
		fmt.Println("Example: go run cmd/find-product/main.go \"backpack\" \"men's clothing\"")
		os.Exit(1)
	}

	filter := service.ProductFilter{Query: os.Args[1]}
	if len(os.Args) > 2 {
		filter.Category = os.Args[2]
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	catalogService := service.NewCatalogService(catalog.NewClient(cfg.Catalog, logger), logger)

	fmt.Printf("🔍 Searching %s for: %s\n\n", cfg.Catalog.BaseURL, filter.Query)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalog.Timeout)
	defer cancel()

	products, err := catalogService.ListProducts(ctx, filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to query catalog: %v\n", err)
		os.Exit(1)
	}

	if len(products) == 0 {
		fmt.Printf("❌ No products match '%s'.\n", filter.Query)
		if filter.Category != "" {
			fmt.Printf("\nCheck that category '%s' exists (GET /v1/categories).\n", filter.Category)
		}
		os.Exit(1)
	}

	fmt.Printf("✅ Found %d product(s)\n\n", len(products))
	for _, p := range products {
		price := format.PriceWithSymbol(decimal.NewFromFloat(p.Price), cfg.Cart.CurrencySymbol)
		fmt.Printf("#%-4d %-50s %10s\n", p.ID, format.Truncate(p.Title, 47), price)
		fmt.Printf("      %s | ★ %.1f (%d)\n", p.Category, p.Rating.Rate, p.Rating.Count)
		if desc := strings.TrimSpace(p.Description); desc != "" {
			fmt.Printf("      %s\n", format.Truncate(desc, 80))
		}
	}

	fmt.Printf("\nTo add one to a cart, run:\n")
	fmt.Printf("curl -X POST localhost:%s/v1/cart/items -d '{\"product_id\":%d}'\n", cfg.Port, products[0].ID)
}
