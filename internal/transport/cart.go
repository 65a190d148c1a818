package transport

import (
	"net/http"
	"strconv"

	"whitepepper-be/internal/cart"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	carts cart.Service
}

func NewCartHandler(svc cart.Service) *CartHandler {
	return &CartHandler{carts: svc}
}

type addItemRequest struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	UserID    *uint   `json:"userId"`
	SessionID *string `json:"sessionId"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ownerFromQuery builds the cart owner key from query params. The original
// client always sends sessionId; userId is accepted for signed-in carts.
func ownerFromQuery(c echo.Context) (cart.Owner, error) {
	var owner cart.Owner
	if raw := c.QueryParam("userId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return owner, cart.ErrInvalidOwner
		}
		userID := uint(id)
		owner.UserID = &userID
	}
	if raw := c.QueryParam("sessionId"); raw != "" {
		owner.SessionID = &raw
	}
	return owner, owner.Validate()
}

func (h *CartHandler) GetCart(c echo.Context) error {
	owner, err := ownerFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Session ID is required"})
	}

	items, err := h.carts.GetCart(c.Request().Context(), owner)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}

	owner := cart.Owner{UserID: req.UserID, SessionID: req.SessionID}
	item, err := h.carts.AddItem(c.Request().Context(), owner, req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid cart item ID"})
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}

	item, err := h.carts.UpdateQuantity(c.Request().Context(), uint(id), req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid cart item ID"})
	}

	if err := h.carts.RemoveItem(c.Request().Context(), uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	owner, err := ownerFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Session ID is required"})
	}

	if err := h.carts.ClearCart(c.Request().Context(), owner); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
