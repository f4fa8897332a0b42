// internal/services/errors.go
package services

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidQuantity is returned when a cart mutation is asked for a
	// non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrProductNotFound is returned when a cart add references a product
	// the catalog cannot resolve.
	ErrProductNotFound = errors.New("product not found")

	// ErrNotInWishlist is returned by MoveToCart for a product absent
	// from the wishlist.
	ErrNotInWishlist = errors.New("product is not in the wishlist")

	// ErrEmptyCart is returned when checkout is started with no items.
	ErrEmptyCart = errors.New("cannot check out an empty cart")
)

// OrderValidationError aggregates every order-level field problem so a
// caller can present the full list in one pass.
type OrderValidationError struct {
	Messages []string
}

func (e *OrderValidationError) Error() string {
	return "order validation failed: " + strings.Join(e.Messages, "; ")
}

// AddressValidationError aggregates every violated address rule.
type AddressValidationError struct {
	Messages []string
}

func (e *AddressValidationError) Error() string {
	return "address validation failed: " + strings.Join(e.Messages, "; ")
}
