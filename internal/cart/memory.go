package cart

import (
	"context"
	"sync"
)

// MemoryRepository holds cart items in a map with a monotonic id counter.
// The ordered id slice preserves insertion order for GetItemsByOwner.
type MemoryRepository struct {
	mu     sync.Mutex
	items  map[uint]CartItem
	ids    []uint
	nextID uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items:  make(map[uint]CartItem),
		nextID: 1,
	}
}

func (r *MemoryRepository) GetItemsByOwner(ctx context.Context, owner Owner) ([]CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []CartItem
	for _, id := range r.ids {
		item := r.items[id]
		if owner.Matches(item.UserID, item.SessionID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MemoryRepository) GetItemByID(ctx context.Context, id uint) (*CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *MemoryRepository) GetItemByOwnerAndProduct(ctx context.Context, owner Owner, productID uint) (*CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.ids {
		item := r.items[id]
		if item.ProductID == productID && owner.Matches(item.UserID, item.SessionID) {
			return &item, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) CreateItem(ctx context.Context, params CreateItemParams) (*CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := CartItem{
		ID:        r.nextID,
		UserID:    params.Owner.UserID,
		SessionID: params.Owner.SessionID,
		ProductID: params.ProductID,
		Quantity:  params.Quantity,
	}
	r.nextID++
	r.items[item.ID] = item
	r.ids = append(r.ids, item.ID)
	return &item, nil
}

func (r *MemoryRepository) UpdateItemQuantity(ctx context.Context, id uint, quantity int) (*CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	item.Quantity = quantity
	r.items[id] = item
	return &item, nil
}

func (r *MemoryRepository) DeleteItem(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	r.ids = removeID(r.ids, id)
	return true, nil
}

func (r *MemoryRepository) ClearByOwner(ctx context.Context, owner Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.ids[:0]
	for _, id := range r.ids {
		item := r.items[id]
		if owner.Matches(item.UserID, item.SessionID) {
			delete(r.items, id)
			continue
		}
		kept = append(kept, id)
	}
	r.ids = kept
	return nil
}

func removeID(ids []uint, id uint) []uint {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
