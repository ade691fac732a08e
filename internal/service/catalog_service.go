package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/catalog"
	"github.com/jafarshop/storefront/internal/domain"
)

// Catalog is the read-only product source the services depend on
type Catalog interface {
	GetProducts(ctx context.Context, opts catalog.ListOptions) ([]domain.Product, error)
	GetProductsInCategory(ctx context.Context, category string, opts catalog.ListOptions) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	GetCategories(ctx context.Context) ([]string, error)
}

type CatalogService struct {
	catalog Catalog
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog Catalog, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		logger:  logger,
	}
}

// ListProducts returns the products matching filter, in catalog order
func (s *CatalogService) ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	if !filter.Sort.IsValid() {
		return nil, fmt.Errorf("invalid sort order %q", filter.Sort)
	}

	opts := catalog.ListOptions{Limit: filter.Limit, Sort: filter.Sort}

	var products []domain.Product
	var err error
	if filter.Category != "" {
		products, err = s.catalog.GetProductsInCategory(ctx, filter.Category, opts)
	} else {
		products, err = s.catalog.GetProducts(ctx, opts)
	}
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	if query == "" {
		return products, nil
	}

	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			matched = append(matched, p)
		}
	}

	s.logger.Debug("Filtered products",
		zap.String("query", query),
		zap.Int("fetched", len(products)),
		zap.Int("matched", len(matched)),
	)

	return matched, nil
}

// GetProduct returns a single product
func (s *CatalogService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.catalog.GetProduct(ctx, id)
}

// GetCategories returns the catalog categories
func (s *CatalogService) GetCategories(ctx context.Context) ([]string, error) {
	return s.catalog.GetCategories(ctx)
}
