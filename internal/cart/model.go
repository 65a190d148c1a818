package cart

import (
	"fmt"

	"whitepepper-be/internal/catalog"
)

// Owner identifies whose cart a line item belongs to: an authenticated user
// or an anonymous session. Exactly one of the two must be set; there is no
// cart entity, the cart is the set of items sharing an owner key.
type Owner struct {
	UserID    *uint
	SessionID *string
}

func (o Owner) Validate() error {
	hasUser := o.UserID != nil
	hasSession := o.SessionID != nil && *o.SessionID != ""
	if hasUser == hasSession {
		return ErrInvalidOwner
	}
	return nil
}

// Key renders a stable bucket key, used for per-owner serialization.
func (o Owner) Key() string {
	if o.UserID != nil {
		return fmt.Sprintf("user:%d", *o.UserID)
	}
	if o.SessionID != nil {
		return "session:" + *o.SessionID
	}
	return ""
}

func (o Owner) Matches(userID *uint, sessionID *string) bool {
	if o.UserID != nil {
		return userID != nil && *userID == *o.UserID
	}
	if o.SessionID != nil && *o.SessionID != "" {
		return sessionID != nil && *sessionID == *o.SessionID
	}
	return false
}

type CartItem struct {
	ID        uint    `json:"id"`
	UserID    *uint   `json:"userId"`
	SessionID *string `json:"sessionId"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
}

// ItemWithProduct is a cart line with its product resolved, the shape the
// rendering layer consumes.
type ItemWithProduct struct {
	CartItem
	Product catalog.Product `json:"product"`
}

type CreateItemParams struct {
	Owner     Owner
	ProductID uint
	Quantity  int
}

// Shipping policy: flat fee below the free-shipping threshold. This is the
// single place the rule lives; checkout reuses it via ComputeTotals.
const (
	FreeShippingThreshold = 1000
	ShippingFee           = 100
)

type Totals struct {
	TotalItems int     `json:"totalItems"`
	Subtotal   float64 `json:"subtotal"`
	Shipping   float64 `json:"shipping"`
	Total      float64 `json:"total"`
}

// ComputeTotals derives the cart's aggregate numbers. Nothing here is ever
// stored; orders snapshot the result at checkout time.
func ComputeTotals(items []ItemWithProduct) Totals {
	var t Totals
	for _, item := range items {
		t.TotalItems += item.Quantity
		t.Subtotal += catalog.EffectivePrice(item.Product) * float64(item.Quantity)
	}
	if t.Subtotal < FreeShippingThreshold {
		t.Shipping = ShippingFee
	}
	t.Total = t.Subtotal + t.Shipping
	return t
}
