package service

import "go.uber.org/zap"

// Services groups the application services handed to the HTTP layer
type Services struct {
	Catalog *CatalogService
	Cart    *CartService
}

// NewServices wires every service against the same catalog
func NewServices(catalog Catalog, currencySymbol string, logger *zap.Logger) *Services {
	return &Services{
		Catalog: NewCatalogService(catalog, logger),
		Cart:    NewCartService(catalog, currencySymbol, logger),
	}
}
