package transport

import (
	"net/http"
	"strconv"

	"whitepepper-be/internal/cart"
	"whitepepper-be/internal/order"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{orders: svc}
}

type checkoutRequest struct {
	UserID          *uint   `json:"userId"`
	SessionID       *string `json:"sessionId"`
	ShippingAddress string  `json:"shippingAddress"`
	PaymentMethod   string  `json:"paymentMethod"`
}

type createIntentRequest struct {
	OrderID uint `json:"orderId"`
}

type verifyPaymentRequest struct {
	OrderID           uint    `json:"orderId"`
	RazorpayOrderID   string  `json:"razorpayOrderId"`
	RazorpayPaymentID string  `json:"razorpayPaymentId"`
	RazorpaySignature string  `json:"razorpaySignature"`
	UserID            *uint   `json:"userId"`
	SessionID         *string `json:"sessionId"`
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}

	result, err := h.orders.Checkout(c.Request().Context(), order.CheckoutInput{
		Owner:           cart.Owner{UserID: req.UserID, SessionID: req.SessionID},
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid order ID"})
	}

	result, err := h.orders.GetOrder(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	raw := c.QueryParam("userId")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "User ID is required"})
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid user ID"})
	}

	orders, err := h.orders.ListUserOrders(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) CreatePaymentIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}

	intent, err := h.orders.CreatePaymentIntent(c.Request().Context(), req.OrderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, intent)
}

func (h *OrderHandler) VerifyPayment(c echo.Context) error {
	var req verifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}

	err := h.orders.ConfirmPayment(c.Request().Context(), order.ConfirmPaymentInput{
		OrderID:   req.OrderID,
		IntentID:  req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
		Owner:     cart.Owner{UserID: req.UserID, SessionID: req.SessionID},
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
