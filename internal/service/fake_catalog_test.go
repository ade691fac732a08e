package service

import (
	"context"
	"strconv"

	"github.com/jafarshop/storefront/internal/catalog"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/pkg/errors"
)

type fakeCatalog struct {
	products   []domain.Product
	categories []string
	err        error
	lastOpts   catalog.ListOptions
}

func (f *fakeCatalog) GetProducts(ctx context.Context, opts catalog.ListOptions) ([]domain.Product, error) {
	f.lastOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeCatalog) GetProductsInCategory(ctx context.Context, category string, opts catalog.ListOptions) ([]domain.Product, error) {
	f.lastOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "product", ID: strconv.Itoa(id)}
}

func (f *fakeCatalog) GetCategories(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		products: []domain.Product{
			{ID: 1, Title: "Fjallraven Backpack", Price: 10.99, Description: "Fits 15 inch laptops", Category: "men's clothing"},
			{ID: 2, Title: "Solid Gold Petite Micropave", Price: 25.50, Description: "Satisfaction guaranteed", Category: "jewelery"},
			{ID: 3, Title: "WD 2TB Elements Portable Drive", Price: 64, Description: "USB 3.0 and USB 2.0 compatibility", Category: "electronics"},
		},
		categories: []string{"electronics", "jewelery", "men's clothing"},
	}
}
