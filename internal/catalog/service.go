package catalog

import (
	"context"

	"whitepepper-be/internal/logger"

	"go.uber.org/zap"
)

// ProductFilter narrows ListProducts. Zero value means "everything".
// CategoryID wins over Search wins over Featured, mirroring the API surface.
type ProductFilter struct {
	CategoryID *uint
	Search     *string
	Featured   bool
	Limit      int
}

type Service interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error)
	ListNewArrivals(ctx context.Context, limit int) ([]Product, error)
	ListBestSellers(ctx context.Context, limit int) ([]Product, error)
	GetProductDetail(ctx context.Context, slug string) (*ProductWithCategory, error)
	GetProductByID(ctx context.Context, id uint) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	c, err := s.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

func (s *service) ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	switch {
	case filter.CategoryID != nil:
		return s.repo.ListProductsByCategory(ctx, *filter.CategoryID)
	case filter.Search != nil && *filter.Search != "":
		return s.repo.SearchProducts(ctx, *filter.Search)
	case filter.Featured:
		return s.repo.ListFeatured(ctx, filter.Limit)
	default:
		return s.repo.ListProducts(ctx)
	}
}

func (s *service) ListNewArrivals(ctx context.Context, limit int) ([]Product, error) {
	return s.repo.ListNewArrivals(ctx, limit)
}

func (s *service) ListBestSellers(ctx context.Context, limit int) ([]Product, error) {
	return s.repo.ListBestSellers(ctx, limit)
}

// GetProductDetail resolves a product by slug and attaches its category.
// A missing or dangling category id yields a nil category, not an error.
func (s *service) GetProductDetail(ctx context.Context, slug string) (*ProductWithCategory, error) {
	p, err := s.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	detail := &ProductWithCategory{Product: *p}
	if p.CategoryID != nil {
		c, err := s.repo.GetCategoryByID(ctx, *p.CategoryID)
		if err != nil {
			logger.FromCtx(ctx).Warn("failed to resolve product category",
				zap.Uint("product_id", p.ID),
				zap.Uint("category_id", *p.CategoryID),
				zap.Error(err),
			)
		} else {
			detail.Category = c
		}
	}
	return detail, nil
}

func (s *service) GetProductByID(ctx context.Context, id uint) (*Product, error) {
	p, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}
