package catalog

import (
	"context"
	"database/sql"
	"errors"

	"whitepepper-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const productColumns = `
	id,
	name,
	description,
	price,
	discount_price,
	image_url,
	category_id,
	featured,
	in_stock,
	weight,
	rating,
	review_count,
	slug,
	is_new_product,
	is_best_seller
`

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	query := `
	SELECT id, name, description, slug, image_url
	FROM categories
	ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.FromCtx(ctx).Error("query failed ListCategories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Slug, &c.ImageURL); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *postgresRepository) GetCategoryByID(ctx context.Context, id uint) (*Category, error) {
	return r.getCategory(ctx, `
	SELECT id, name, description, slug, image_url
	FROM categories
	WHERE id = $1
	`, id)
}

func (r *postgresRepository) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	return r.getCategory(ctx, `
	SELECT id, name, description, slug, image_url
	FROM categories
	WHERE slug = $1
	`, slug)
}

func (r *postgresRepository) getCategory(ctx context.Context, query string, arg any) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&c.ID, &c.Name, &c.Description, &c.Slug, &c.ImageURL)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) CreateCategory(ctx context.Context, params CreateCategoryParams) (*Category, error) {
	query := `
	INSERT INTO categories (name, description, slug, image_url)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, description, slug, image_url
	`

	var c Category
	err := r.db.QueryRowContext(ctx, query,
		params.Name, params.Description, params.Slug, params.ImageURL,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Slug, &c.ImageURL)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) ListProducts(ctx context.Context) ([]Product, error) {
	return r.queryProducts(ctx, `
	SELECT `+productColumns+`
	FROM products
	ORDER BY id ASC
	`)
}

func (r *postgresRepository) ListProductsByCategory(ctx context.Context, categoryID uint) ([]Product, error) {
	return r.queryProducts(ctx, `
	SELECT `+productColumns+`
	FROM products
	WHERE category_id = $1
	ORDER BY id ASC
	`, categoryID)
}

func (r *postgresRepository) SearchProducts(ctx context.Context, term string) ([]Product, error) {
	return r.queryProducts(ctx, `
	SELECT `+productColumns+`
	FROM products
	WHERE name ILIKE $1 OR description ILIKE $1
	ORDER BY id ASC
	`, "%"+term+"%")
}

func (r *postgresRepository) ListFeatured(ctx context.Context, limit int) ([]Product, error) {
	return r.queryFlagged(ctx, "featured", limit)
}

func (r *postgresRepository) ListNewArrivals(ctx context.Context, limit int) ([]Product, error) {
	return r.queryFlagged(ctx, "is_new_product", limit)
}

func (r *postgresRepository) ListBestSellers(ctx context.Context, limit int) ([]Product, error) {
	return r.queryFlagged(ctx, "is_best_seller", limit)
}

func (r *postgresRepository) queryFlagged(ctx context.Context, column string, limit int) ([]Product, error) {
	// column is one of three fixed flag names, never user input.
	query := `
	SELECT ` + productColumns + `
	FROM products
	WHERE ` + column + ` = TRUE
	ORDER BY id ASC
	`
	if limit > 0 {
		return r.queryProducts(ctx, query+` LIMIT $1`, limit)
	}
	return r.queryProducts(ctx, query)
}

func (r *postgresRepository) GetProductByID(ctx context.Context, id uint) (*Product, error) {
	return r.getProduct(ctx, `
	SELECT `+productColumns+`
	FROM products
	WHERE id = $1
	`, id)
}

func (r *postgresRepository) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	return r.getProduct(ctx, `
	SELECT `+productColumns+`
	FROM products
	WHERE slug = $1
	`, slug)
}

func (r *postgresRepository) getProduct(ctx context.Context, query string, arg any) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.DiscountPrice,
		&p.ImageURL, &p.CategoryID, &p.Featured, &p.InStock, &p.Weight,
		&p.Rating, &p.ReviewCount, &p.Slug, &p.IsNewProduct, &p.IsBestSeller,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error) {
	query := `
	INSERT INTO products (
		name, description, price, discount_price, image_url, category_id,
		featured, in_stock, weight, rating, review_count, slug,
		is_new_product, is_best_seller
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	RETURNING ` + productColumns

	var p Product
	err := r.db.QueryRowContext(ctx, query,
		params.Name, params.Description, params.Price, params.DiscountPrice,
		params.ImageURL, params.CategoryID, params.Featured, params.InStock,
		params.Weight, params.Rating, params.ReviewCount, params.Slug,
		params.IsNewProduct, params.IsBestSeller,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.DiscountPrice,
		&p.ImageURL, &p.CategoryID, &p.Featured, &p.InStock, &p.Weight,
		&p.Rating, &p.ReviewCount, &p.Slug, &p.IsNewProduct, &p.IsBestSeller,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrSlugTaken
		}
		logger.FromCtx(ctx).Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) queryProducts(ctx context.Context, query string, args ...any) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("product query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.DiscountPrice,
			&p.ImageURL, &p.CategoryID, &p.Featured, &p.InStock, &p.Weight,
			&p.Rating, &p.ReviewCount, &p.Slug, &p.IsNewProduct, &p.IsBestSeller,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
