package cart

import (
	"context"

	"github.com/jafarshop/storefront/pkg/errors"
)

type contextKey struct{}

// NewContext returns a copy of ctx carrying store
func NewContext(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, store)
}

// FromContext returns the store carried by ctx.
// A missing store is a wiring error and yields errors.ErrNoCartStore.
func FromContext(ctx context.Context) (*Store, error) {
	store, ok := ctx.Value(contextKey{}).(*Store)
	if !ok || store == nil {
		return nil, errors.ErrNoCartStore
	}
	return store, nil
}
