package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
)

func productIDs(products []domain.Product) []int {
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestCatalogService_ListProducts(t *testing.T) {
	tests := []struct {
		name   string
		filter ProductFilter
		want   []int
	}{
		{name: "all", filter: ProductFilter{}, want: []int{1, 2, 3}},
		{name: "category", filter: ProductFilter{Category: "jewelery"}, want: []int{2}},
		{name: "title search is case-insensitive", filter: ProductFilter{Query: "BACKPACK"}, want: []int{1}},
		{name: "description search", filter: ProductFilter{Query: "usb"}, want: []int{3}},
		{name: "category and search", filter: ProductFilter{Category: "electronics", Query: "gold"}, want: []int{}},
		{name: "blank query keeps all", filter: ProductFilter{Query: "   "}, want: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(testCatalog(), zap.NewNop())

			products, err := svc.ListProducts(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, productIDs(products))
		})
	}
}

func TestCatalogService_ListProducts_PassesOptions(t *testing.T) {
	catalog := testCatalog()
	svc := NewCatalogService(catalog, zap.NewNop())

	_, err := svc.ListProducts(context.Background(), ProductFilter{Limit: 2, Sort: domain.SortDescending})
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.lastOpts.Limit)
	assert.Equal(t, domain.SortDescending, catalog.lastOpts.Sort)
}

func TestCatalogService_ListProducts_Errors(t *testing.T) {
	svc := NewCatalogService(testCatalog(), zap.NewNop())
	_, err := svc.ListProducts(context.Background(), ProductFilter{Sort: "sideways"})
	assert.Error(t, err)

	broken := testCatalog()
	broken.err = fmt.Errorf("connection refused")
	svc = NewCatalogService(broken, zap.NewNop())
	_, err = svc.ListProducts(context.Background(), ProductFilter{})
	assert.ErrorIs(t, err, broken.err)
}
