package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/cart"
	"github.com/jafarshop/storefront/pkg/errors"
)

func TestCartService_AddProduct(t *testing.T) {
	svc := NewCartService(testCatalog(), "", zap.NewNop())
	store := cart.New()

	product, err := svc.AddProduct(context.Background(), store, 1)
	require.NoError(t, err)
	assert.Equal(t, "Fjallraven Backpack", product.Title)

	_, err = svc.AddProduct(context.Background(), store, 1)
	require.NoError(t, err)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartService_AddProduct_UnknownLeavesCartUntouched(t *testing.T) {
	svc := NewCartService(testCatalog(), "", zap.NewNop())
	store := cart.New()

	_, err := svc.AddProduct(context.Background(), store, 99)
	var notFound *errors.ErrNotFound
	assert.True(t, errors.As(err, &notFound))
	assert.Empty(t, store.Items())
}

func TestCartService_View(t *testing.T) {
	svc := NewCartService(testCatalog(), "", zap.NewNop())
	store := cart.New()
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, store, 1)
	require.NoError(t, err)
	_, err = svc.AddProduct(ctx, store, 1)
	require.NoError(t, err)
	_, err = svc.AddProduct(ctx, store, 2)
	require.NoError(t, err)

	view := svc.View(store.Snapshot())

	assert.Equal(t, 3, view.ItemCount)
	assert.Equal(t, "47.48", view.Total)
	assert.Equal(t, "$47.48", view.FormattedTotal)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "21.98", view.Items[0].Subtotal)
	assert.Equal(t, "$10.99", view.Items[0].FormattedPrice)
	assert.Equal(t, "$21.98", view.Items[0].FormattedSubtotal)
	assert.Equal(t, "$25.50", view.Items[1].FormattedPrice)
}

func TestCartService_Checkout(t *testing.T) {
	svc := NewCartService(testCatalog(), "A$", zap.NewNop())
	store := cart.New()

	_, err := svc.Checkout(store)
	assert.ErrorIs(t, err, errors.ErrEmptyCart)

	_, err = svc.AddProduct(context.Background(), store, 3)
	require.NoError(t, err)

	receipt, err := svc.Checkout(store)
	require.NoError(t, err)

	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, 1, receipt.Cart.ItemCount)
	assert.Equal(t, "A$64.00", receipt.Cart.FormattedTotal)
	assert.Empty(t, store.Items())
}

func TestCartService_Checkout_ConcurrentAddsAreNotLost(t *testing.T) {
	svc := NewCartService(testCatalog(), "$", zap.NewNop())
	store := cart.New()
	const adders, perAdder = 4, 100

	var wg sync.WaitGroup
	for g := 0; g < adders; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perAdder; i++ {
				_, err := svc.AddProduct(context.Background(), store, 1+i%3)
				assert.NoError(t, err)
			}
		}()
	}

	done := make(chan struct{})
	checkedOut := make(chan int)
	go func() {
		units := 0
		for {
			select {
			case <-done:
				checkedOut <- units
				return
			default:
				receipt, err := svc.Checkout(store)
				if err != nil {
					assert.ErrorIs(t, err, errors.ErrEmptyCart)
					continue
				}
				units += receipt.Cart.ItemCount
			}
		}
	}()

	wg.Wait()
	close(done)
	units := <-checkedOut

	assert.Equal(t, adders*perAdder, units+store.ItemCount())
}
