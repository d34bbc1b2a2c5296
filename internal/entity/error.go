package entity

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("item not found")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidNumber     = errors.New("invalid numeric value")
	ErrPriceInversion    = errors.New("selling price cannot be lower than raw price")
	ErrMissingPrice      = errors.New("price is required when creating an item")
	ErrInvalidQuantity   = errors.New("quantity must be a positive number")
	ErrInsufficientStock = errors.New("quantity exceeds available stock")
)

// IsValidation reports whether err belongs to the request-validation
// taxonomy, all of which map to HTTP 400.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrPriceInversion) ||
		errors.Is(err, ErrMissingPrice) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInsufficientStock)
}
