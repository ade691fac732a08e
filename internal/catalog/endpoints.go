package catalog

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/jafarshop/storefront/internal/domain"
)

// Catalog REST paths, relative to the configured base URL
const (
	productsPath   = "/products"
	categoriesPath = "/products/categories"
)

// ListOptions narrows a product listing
type ListOptions struct {
	Limit int
	Sort  domain.SortOrder
}

func productPath(id int) string {
	return fmt.Sprintf("%s/%d", productsPath, id)
}

func categoryPath(category string) string {
	return fmt.Sprintf("%s/category/%s", productsPath, url.PathEscape(category))
}

func listPath(base string, opts ListOptions) string {
	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Sort != "" {
		q.Set("sort", string(opts.Sort))
	}
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}
