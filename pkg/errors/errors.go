package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrNoCartStore is returned when a request context carries no cart store.
// It signals a wiring bug, not a shopper-facing condition.
var ErrNoCartStore = stderrors.New("no cart store in context")

// ErrEmptyCart is returned when checking out a cart with no line items
var ErrEmptyCart = stderrors.New("cart is empty")

// ErrNotFound is returned when a catalog resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrCatalogUnavailable wraps a failed call to the catalog service.
// Status is zero when no HTTP response was received.
type ErrCatalogUnavailable struct {
	Status int
	Body   string
	Err    error
}

func (e *ErrCatalogUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog unavailable: %v", e.Err)
	}
	return fmt.Sprintf("catalog unavailable: status %d, body: %s", e.Status, e.Body)
}

func (e *ErrCatalogUnavailable) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
