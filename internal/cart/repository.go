package cart

import "context"

// Repository is the storage contract for cart line items. Lookups return
// (nil, nil) when nothing matches.
type Repository interface {
	GetItemsByOwner(ctx context.Context, owner Owner) ([]CartItem, error)
	GetItemByID(ctx context.Context, id uint) (*CartItem, error)
	GetItemByOwnerAndProduct(ctx context.Context, owner Owner, productID uint) (*CartItem, error)
	CreateItem(ctx context.Context, params CreateItemParams) (*CartItem, error)
	UpdateItemQuantity(ctx context.Context, id uint, quantity int) (*CartItem, error)
	DeleteItem(ctx context.Context, id uint) (bool, error)
	ClearByOwner(ctx context.Context, owner Owner) error
}
