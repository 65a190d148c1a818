package cart

import (
	"context"
	"sync"

	"whitepepper-be/internal/catalog"
	"whitepepper-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	GetCart(ctx context.Context, owner Owner) ([]ItemWithProduct, error)
	AddItem(ctx context.Context, owner Owner, productID uint, quantity int) (*ItemWithProduct, error)
	UpdateQuantity(ctx context.Context, id uint, quantity int) (*ItemWithProduct, error)
	RemoveItem(ctx context.Context, id uint) error
	ClearCart(ctx context.Context, owner Owner) error
}

type service struct {
	repo     Repository
	products catalog.Repository

	mu     sync.Mutex
	owners map[string]*sync.Mutex
}

func NewService(repo Repository, products catalog.Repository) Service {
	return &service{
		repo:     repo,
		products: products,
		owners:   make(map[string]*sync.Mutex),
	}
}

// lockOwner serializes mutations per owner key so two concurrent adds of the
// same product cannot both miss the existing row and create duplicates.
func (s *service) lockOwner(owner Owner) func() {
	s.mu.Lock()
	m, ok := s.owners[owner.Key()]
	if !ok {
		m = &sync.Mutex{}
		s.owners[owner.Key()] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// GetCart returns the owner's line items with products resolved, in insertion
// order. Items whose product no longer resolves are skipped.
func (s *service) GetCart(ctx context.Context, owner Owner) ([]ItemWithProduct, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	items, err := s.repo.GetItemsByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	out := make([]ItemWithProduct, 0, len(items))
	for _, item := range items {
		p, err := s.products.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			logger.FromCtx(ctx).Warn("cart item references missing product",
				zap.Uint("cart_item_id", item.ID),
				zap.Uint("product_id", item.ProductID),
			)
			continue
		}
		out = append(out, ItemWithProduct{CartItem: item, Product: *p})
	}
	return out, nil
}

// AddItem merges into an existing row for the same (owner, product) pair or
// creates a new one. The cart is a bag of products, not a log of add events.
func (s *service) AddItem(ctx context.Context, owner Owner, productID uint, quantity int) (*ItemWithProduct, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.String("owner", owner.Key()),
		zap.Uint("product_id", productID),
	)

	// Validate at write time so unresolvable cart rows never exist.
	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, catalog.ErrProductNotFound
	}

	unlock := s.lockOwner(owner)
	defer unlock()

	existing, err := s.repo.GetItemByOwnerAndProduct(ctx, owner, productID)
	if err != nil {
		return nil, err
	}

	var item *CartItem
	if existing != nil {
		item, err = s.repo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+quantity)
	} else {
		item, err = s.repo.CreateItem(ctx, CreateItemParams{
			Owner:     owner,
			ProductID: productID,
			Quantity:  quantity,
		})
	}
	if err != nil {
		log.Error("failed to add cart item", zap.Error(err))
		return nil, err
	}

	log.Debug("cart item added", zap.Uint("cart_item_id", item.ID), zap.Int("quantity", item.Quantity))

	return &ItemWithProduct{CartItem: *item, Product: *product}, nil
}

// UpdateQuantity overwrites a line's quantity. Zero and negative quantities
// are rejected; removal is an explicit operation, never a side effect.
func (s *service) UpdateQuantity(ctx context.Context, id uint, quantity int) (*ItemWithProduct, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	existing, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCartItemNotFound
	}

	item, err := s.repo.UpdateItemQuantity(ctx, id, quantity)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	product, err := s.products.GetProductByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, catalog.ErrProductNotFound
	}

	return &ItemWithProduct{CartItem: *item, Product: *product}, nil
}

func (s *service) RemoveItem(ctx context.Context, id uint) error {
	deleted, err := s.repo.DeleteItem(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCartItemNotFound
	}
	return nil
}

// ClearCart removes every item for the owner. An already-empty cart clears
// successfully.
func (s *service) ClearCart(ctx context.Context, owner Owner) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	return s.repo.ClearByOwner(ctx, owner)
}
