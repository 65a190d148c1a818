package order

import "time"

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Payment methods accepted at checkout. Only cash-on-delivery completes
// without the gateway.
const (
	MethodCOD  = "cod"
	MethodCard = "card"
	MethodUPI  = "upi"
)

// Order is immutable once created, status and payment intent aside.
// TotalAmount is the caller's snapshot; the store never recomputes it.
// PaymentIntentID is the gateway order id recorded when an intent is created;
// a confirmation callback must carry the same id to mark the order paid.
type Order struct {
	ID              uint      `json:"id"`
	UserID          *uint     `json:"userId"`
	TotalAmount     float64   `json:"totalAmount"`
	Status          Status    `json:"status"`
	ShippingAddress string    `json:"shippingAddress"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentIntentID *string   `json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// OrderItem snapshots the unit price at order time, so later product price
// changes never alter historical records. TotalPrice is stored, not derived.
type OrderItem struct {
	ID         uint    `json:"id"`
	OrderID    uint    `json:"orderId"`
	ProductID  uint    `json:"productId"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"totalPrice"`
}

type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

type CreateOrderParams struct {
	UserID          *uint
	TotalAmount     float64
	Status          Status
	ShippingAddress string
	PaymentMethod   string
}

type AddOrderItemParams struct {
	OrderID    uint
	ProductID  uint
	Quantity   int
	Price      float64
	TotalPrice float64
}
