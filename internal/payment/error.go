package payment

import "errors"

var (
	ErrInvalidSignature = errors.New("invalid payment signature")
)
