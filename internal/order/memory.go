package order

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository holds orders and order items in maps with monotonic id
// counters, item ids doubling as insertion order.
type MemoryRepository struct {
	mu sync.Mutex

	orders      map[uint]Order
	orderIDs    []uint
	nextOrderID uint

	items      map[uint]OrderItem
	itemIDs    []uint
	nextItemID uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		orders:      make(map[uint]Order),
		nextOrderID: 1,
		items:       make(map[uint]OrderItem),
		nextItemID:  1,
	}
}

func (r *MemoryRepository) CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o := Order{
		ID:              r.nextOrderID,
		UserID:          params.UserID,
		TotalAmount:     params.TotalAmount,
		Status:          params.Status,
		ShippingAddress: params.ShippingAddress,
		PaymentMethod:   params.PaymentMethod,
		CreatedAt:       time.Now(),
	}
	r.nextOrderID++
	r.orders[o.ID] = o
	r.orderIDs = append(r.orderIDs, o.ID)
	return &o, nil
}

func (r *MemoryRepository) AddOrderItem(ctx context.Context, params AddOrderItemParams) (*OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[params.OrderID]; !ok {
		return nil, ErrOrderNotFound
	}

	item := OrderItem{
		ID:         r.nextItemID,
		OrderID:    params.OrderID,
		ProductID:  params.ProductID,
		Quantity:   params.Quantity,
		Price:      params.Price,
		TotalPrice: params.TotalPrice,
	}
	r.nextItemID++
	r.items[item.ID] = item
	r.itemIDs = append(r.itemIDs, item.ID)
	return &item, nil
}

func (r *MemoryRepository) GetOrder(ctx context.Context, id uint) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *MemoryRepository) GetOrderItems(ctx context.Context, orderID uint) ([]OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []OrderItem
	for _, id := range r.itemIDs {
		if item := r.items[id]; item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListUserOrders(ctx context.Context, userID uint) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Order
	for _, id := range r.orderIDs {
		if o := r.orders[id]; o.UserID != nil && *o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *MemoryRepository) UpdateStatus(ctx context.Context, id uint, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = status
	r.orders[id] = o
	return nil
}

func (r *MemoryRepository) SetPaymentIntent(ctx context.Context, id uint, intentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.PaymentIntentID = &intentID
	r.orders[id] = o
	return nil
}
