package catalog

import "context"

// Repository is the storage contract for the catalog. Lookups return
// (nil, nil) when nothing matches; the service maps that to a sentinel.
type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryByID(ctx context.Context, id uint) (*Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	CreateCategory(ctx context.Context, params CreateCategoryParams) (*Category, error)

	ListProducts(ctx context.Context) ([]Product, error)
	ListProductsByCategory(ctx context.Context, categoryID uint) ([]Product, error)
	SearchProducts(ctx context.Context, term string) ([]Product, error)
	ListFeatured(ctx context.Context, limit int) ([]Product, error)
	ListNewArrivals(ctx context.Context, limit int) ([]Product, error)
	ListBestSellers(ctx context.Context, limit int) ([]Product, error)
	GetProductByID(ctx context.Context, id uint) (*Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error)
}
