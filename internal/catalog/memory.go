package catalog

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepository keeps the catalog in process-wide maps with a monotonic
// counter per entity type. Slices of ids preserve insertion order, which is
// the natural order of every list operation.
type MemoryRepository struct {
	mu sync.RWMutex

	categories  map[uint]Category
	categoryIDs []uint
	nextCatID   uint

	products   map[uint]Product
	productIDs []uint
	nextProdID uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		categories: make(map[uint]Category),
		nextCatID:  1,
		products:   make(map[uint]Product),
		nextProdID: 1,
	}
}

func (r *MemoryRepository) ListCategories(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, 0, len(r.categoryIDs))
	for _, id := range r.categoryIDs {
		out = append(out, r.categories[id])
	}
	return out, nil
}

func (r *MemoryRepository) GetCategoryByID(ctx context.Context, id uint) (*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *MemoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.categoryIDs {
		if c := r.categories[id]; c.Slug == slug {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) CreateCategory(ctx context.Context, params CreateCategoryParams) (*Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.categoryIDs {
		if r.categories[id].Slug == params.Slug {
			return nil, ErrSlugTaken
		}
	}

	c := Category{
		ID:          r.nextCatID,
		Name:        params.Name,
		Description: params.Description,
		Slug:        params.Slug,
		ImageURL:    params.ImageURL,
	}
	r.nextCatID++
	r.categories[c.ID] = c
	r.categoryIDs = append(r.categoryIDs, c.ID)
	return &c, nil
}

func (r *MemoryRepository) ListProducts(ctx context.Context) ([]Product, error) {
	return r.filterProducts(func(Product) bool { return true }, 0), nil
}

func (r *MemoryRepository) ListProductsByCategory(ctx context.Context, categoryID uint) ([]Product, error) {
	return r.filterProducts(func(p Product) bool {
		return p.CategoryID != nil && *p.CategoryID == categoryID
	}, 0), nil
}

func (r *MemoryRepository) SearchProducts(ctx context.Context, term string) ([]Product, error) {
	q := strings.ToLower(term)
	return r.filterProducts(func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	}, 0), nil
}

func (r *MemoryRepository) ListFeatured(ctx context.Context, limit int) ([]Product, error) {
	return r.filterProducts(func(p Product) bool { return p.Featured }, limit), nil
}

func (r *MemoryRepository) ListNewArrivals(ctx context.Context, limit int) ([]Product, error) {
	return r.filterProducts(func(p Product) bool { return p.IsNewProduct }, limit), nil
}

func (r *MemoryRepository) ListBestSellers(ctx context.Context, limit int) ([]Product, error) {
	return r.filterProducts(func(p Product) bool { return p.IsBestSeller }, limit), nil
}

func (r *MemoryRepository) GetProductByID(ctx context.Context, id uint) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *MemoryRepository) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.productIDs {
		if p := r.products[id]; p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.productIDs {
		if r.products[id].Slug == params.Slug {
			return nil, ErrSlugTaken
		}
	}

	p := Product{
		ID:            r.nextProdID,
		Name:          params.Name,
		Description:   params.Description,
		Price:         params.Price,
		DiscountPrice: params.DiscountPrice,
		ImageURL:      params.ImageURL,
		CategoryID:    params.CategoryID,
		Featured:      params.Featured,
		InStock:       params.InStock,
		Weight:        params.Weight,
		Rating:        params.Rating,
		ReviewCount:   params.ReviewCount,
		Slug:          params.Slug,
		IsNewProduct:  params.IsNewProduct,
		IsBestSeller:  params.IsBestSeller,
	}
	r.nextProdID++
	r.products[p.ID] = p
	r.productIDs = append(r.productIDs, p.ID)
	return &p, nil
}

// filterProducts walks products in insertion order. limit <= 0 means no limit;
// truncation keeps the first matches, no ranking is applied.
func (r *MemoryRepository) filterProducts(keep func(Product) bool, limit int) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.productIDs))
	for _, id := range r.productIDs {
		p := r.products[id]
		if !keep(p) {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
