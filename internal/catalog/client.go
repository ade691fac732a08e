package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/pkg/errors"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	inflight   singleflight.Group
}

// NewClient creates a new catalog REST client
func NewClient(cfg config.CatalogConfig, logger *zap.Logger) *Client {
	// Normalize base URL - assume https when no scheme, drop trailing slashes
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// GetProducts fetches the product listing
func (c *Client) GetProducts(ctx context.Context, opts ListOptions) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.getJSON(ctx, listPath(productsPath, opts), &products); err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetProductsInCategory fetches the products of one category
func (c *Client) GetProductsInCategory(ctx context.Context, category string, opts ListOptions) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.getJSON(ctx, listPath(categoryPath(category), opts), &products); err != nil {
		return nil, fmt.Errorf("failed to get products in category %q: %w", category, err)
	}
	return products, nil
}

// GetProduct fetches a single product by id
func (c *Client) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	body, err := c.get(ctx, productPath(id))
	if err != nil {
		var notFound *errors.ErrNotFound
		if errors.As(err, &notFound) {
			return nil, &errors.ErrNotFound{Resource: "product", ID: strconv.Itoa(id)}
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	// The catalog answers unknown ids with 200 and an empty body
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &errors.ErrNotFound{Resource: "product", ID: strconv.Itoa(id)}
	}

	var product domain.Product
	if err := json.Unmarshal(trimmed, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product %d: %w", id, err)
	}
	return &product, nil
}

// GetCategories fetches the category names
func (c *Client) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, categoriesPath, &categories); err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// get performs a GET, collapsing identical in-flight requests into one.
// The shared request is detached from any single caller's cancellation; each
// caller stops waiting when its own ctx is done.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.inflight.DoChan(path, func() (interface{}, error) {
		return c.fetch(fetchCtx, path)
	})

	select {
	case <-ctx.Done():
		return nil, &errors.ErrCatalogUnavailable{Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			c.logger.Debug("Catalog request shared", zap.String("path", path))
		}
		return res.Val.([]byte), nil
	}
}

func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Catalog request failed", zap.String("url", url), zap.Error(err))
		return nil, &errors.ErrCatalogUnavailable{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.ErrCatalogUnavailable{Status: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug("Catalog request",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode == http.StatusNotFound {
		return nil, &errors.ErrNotFound{Resource: "catalog resource", ID: path}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &errors.ErrCatalogUnavailable{Status: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
