package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/cart"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/format"
	"github.com/jafarshop/storefront/pkg/errors"
)

type CartService struct {
	catalog        Catalog
	currencySymbol string
	logger         *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(catalog Catalog, currencySymbol string, logger *zap.Logger) *CartService {
	if currencySymbol == "" {
		currencySymbol = format.DefaultCurrencySymbol
	}
	return &CartService{
		catalog:        catalog,
		currencySymbol: currencySymbol,
		logger:         logger,
	}
}

// AddProduct looks the product up in the catalog and adds one unit to store.
// Catalog failures are returned to the caller and leave the cart untouched.
func (s *CartService) AddProduct(ctx context.Context, store *cart.Store, productID int) (*domain.Product, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	store.AddItem(*product)
	return product, nil
}

// View renders a cart snapshot for display
func (s *CartService) View(snap cart.Snapshot) CartView {
	items := make([]CartItemView, len(snap.Items))
	for i, item := range snap.Items {
		subtotal := item.Subtotal()
		items[i] = CartItemView{
			CartLineItem:      item,
			Subtotal:          subtotal.String(),
			FormattedPrice:    format.PriceWithSymbol(item.UnitPrice(), s.currencySymbol),
			FormattedSubtotal: format.PriceWithSymbol(subtotal, s.currencySymbol),
		}
	}

	return CartView{
		Items:          items,
		ItemCount:      snap.ItemCount,
		Total:          snap.Total.String(),
		FormattedTotal: format.PriceWithSymbol(snap.Total, s.currencySymbol),
		Version:        snap.Version,
	}
}

// Checkout is the terminal cart action: it captures the cart and clears it.
// No payment or order is created.
func (s *CartService) Checkout(store *cart.Store) (*Receipt, error) {
	snap := store.Drain()
	if len(snap.Items) == 0 {
		return nil, errors.ErrEmptyCart
	}

	receipt := &Receipt{
		ID:       uuid.New().String(),
		Cart:     s.View(snap),
		PlacedAt: time.Now().UTC(),
	}

	s.logger.Info("Checkout completed",
		zap.String("receipt_id", receipt.ID),
		zap.Int("item_count", snap.ItemCount),
		zap.String("total", snap.Total.String()),
	)

	return receipt, nil
}
