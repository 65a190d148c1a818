package order

import "context"

// Repository is the storage contract for orders. Orders are append-only:
// beyond UpdateStatus and SetPaymentIntent there is no mutation.
type Repository interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error)
	AddOrderItem(ctx context.Context, params AddOrderItemParams) (*OrderItem, error)
	GetOrder(ctx context.Context, id uint) (*Order, error)
	GetOrderItems(ctx context.Context, orderID uint) ([]OrderItem, error)
	ListUserOrders(ctx context.Context, userID uint) ([]Order, error)
	UpdateStatus(ctx context.Context, id uint, status Status) error
	SetPaymentIntent(ctx context.Context, id uint, intentID string) error
}
