package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidOwner    = errors.New("exactly one of userId or sessionId is required")
	ErrInvalidQuantity = errors.New("invalid cart quantity")

	// -- Resource State --
	ErrCartItemNotFound = errors.New("cart item not found")
)
