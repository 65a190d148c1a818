package transport

import (
	"errors"
	"net/http"

	"whitepepper-be/internal/cart"
	"whitepepper-be/internal/catalog"
	"whitepepper-be/internal/logger"
	"whitepepper-be/internal/order"
	"whitepepper-be/internal/payment"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, cart.ErrInvalidOwner),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrCartEmpty),
		errors.Is(err, order.ErrInvalidPaymentMethod):
		return http.StatusBadRequest
	case errors.Is(err, payment.ErrInvalidSignature),
		errors.Is(err, order.ErrPaymentMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, catalog.ErrCategoryNotFound),
		errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, cart.ErrCartItemNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrSlugTaken),
		errors.Is(err, order.ErrOrderAlreadyPaid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps domain sentinels to status codes. Internal faults are
// logged and reported generically so nothing leaks to the caller.
func respondError(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromCtx(c.Request().Context()).Error("request failed", zap.Error(err))
		message = "internal server error"
	}
	return c.JSON(status, map[string]string{"message": message})
}
