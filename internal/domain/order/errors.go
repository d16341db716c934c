package order

import "errors"

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidPrice    = errors.New("invalid sale price")
)

// IsValidationError reports whether err was caused by a bad order request.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidPrice)
}
