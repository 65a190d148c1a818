package order

import "errors"

var (
	// -- Validation & Input --
	ErrCartEmpty            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// -- Resource State --
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderAlreadyPaid = errors.New("order already paid")
	ErrPaymentMismatch  = errors.New("payment intent does not match order")
)
