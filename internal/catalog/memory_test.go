package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRepo(t *testing.T) *MemoryRepository {
	t.Helper()
	repo := NewMemoryRepository()
	require.NoError(t, Seed(context.Background(), repo))
	return repo
}

func TestMemoryRepository_Categories(t *testing.T) {
	ctx := context.Background()

	t.Run("ListInInsertionOrder", func(t *testing.T) {
		repo := seededRepo(t)

		categories, err := repo.ListCategories(ctx)
		assert.NoError(t, err)
		if assert.Len(t, categories, 5) {
			assert.Equal(t, "black-pepper", categories[0].Slug)
			assert.Equal(t, "gift-collections", categories[4].Slug)
		}
	})

	t.Run("GetBySlug", func(t *testing.T) {
		repo := seededRepo(t)

		c, err := repo.GetCategoryBySlug(ctx, "cardamom")
		assert.NoError(t, err)
		if assert.NotNil(t, c) {
			assert.Equal(t, "Cardamom", c.Name)
		}
	})

	t.Run("GetBySlug_NotFound", func(t *testing.T) {
		repo := seededRepo(t)

		c, err := repo.GetCategoryBySlug(ctx, "saffron")
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("Create_AssignsSequentialIDs", func(t *testing.T) {
		repo := NewMemoryRepository()

		a, err := repo.CreateCategory(ctx, CreateCategoryParams{Name: "A", Slug: "a"})
		require.NoError(t, err)
		b, err := repo.CreateCategory(ctx, CreateCategoryParams{Name: "B", Slug: "b"})
		require.NoError(t, err)

		assert.Equal(t, uint(1), a.ID)
		assert.Equal(t, uint(2), b.ID)
	})

	t.Run("Create_DuplicateSlug", func(t *testing.T) {
		repo := NewMemoryRepository()

		_, err := repo.CreateCategory(ctx, CreateCategoryParams{Name: "A", Slug: "a"})
		require.NoError(t, err)
		_, err = repo.CreateCategory(ctx, CreateCategoryParams{Name: "A2", Slug: "a"})
		assert.ErrorIs(t, err, ErrSlugTaken)
	})
}

func TestMemoryRepository_Products(t *testing.T) {
	ctx := context.Background()

	t.Run("ListInInsertionOrder", func(t *testing.T) {
		repo := seededRepo(t)

		products, err := repo.ListProducts(ctx)
		assert.NoError(t, err)
		if assert.Len(t, products, 6) {
			assert.Equal(t, "premium-black-pepper", products[0].Slug)
			assert.Equal(t, "chefs-essential-box", products[5].Slug)
		}
	})

	t.Run("ByCategory", func(t *testing.T) {
		repo := seededRepo(t)

		products, err := repo.ListProductsByCategory(ctx, 5)
		assert.NoError(t, err)
		if assert.Len(t, products, 2) {
			assert.Equal(t, "coorg-signature-collection", products[0].Slug)
			assert.Equal(t, "chefs-essential-box", products[1].Slug)
		}
	})

	t.Run("ByCategory_Empty", func(t *testing.T) {
		repo := seededRepo(t)

		products, err := repo.ListProductsByCategory(ctx, 99)
		assert.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Search_MatchesName", func(t *testing.T) {
		repo := seededRepo(t)

		products, err := repo.SearchProducts(ctx, "CARDAMOM")
		assert.NoError(t, err)
		if assert.Len(t, products, 1) {
			assert.Equal(t, "green-cardamom-pods", products[0].Slug)
		}
	})

	t.Run("Search_MatchesDescription", func(t *testing.T) {
		repo := seededRepo(t)

		// "wooden box" appears only in the signature collection's description.
		products, err := repo.SearchProducts(ctx, "wooden box")
		assert.NoError(t, err)
		if assert.Len(t, products, 1) {
			assert.Equal(t, "coorg-signature-collection", products[0].Slug)
		}
	})

	t.Run("Featured_WithLimit", func(t *testing.T) {
		repo := seededRepo(t)

		products, err := repo.ListFeatured(ctx, 4)
		assert.NoError(t, err)
		if assert.Len(t, products, 4) {
			assert.Equal(t, "premium-black-pepper", products[0].Slug)
			assert.Equal(t, "whole-cloves", products[3].Slug)
		}
	})

	t.Run("Featured_ZeroLimitMeansAll", func(t *testing.T) {
		repo := seededRepo(t)

		products, err := repo.ListFeatured(ctx, 0)
		assert.NoError(t, err)
		assert.Len(t, products, 6)
	})

	t.Run("NewArrivals", func(t *testing.T) {
		repo := seededRepo(t)

		products, err := repo.ListNewArrivals(ctx, 8)
		assert.NoError(t, err)
		if assert.Len(t, products, 1) {
			assert.Equal(t, "ceylon-cinnamon", products[0].Slug)
		}
	})

	t.Run("BestSellers", func(t *testing.T) {
		repo := seededRepo(t)

		products, err := repo.ListBestSellers(ctx, 8)
		assert.NoError(t, err)
		if assert.Len(t, products, 2) {
			assert.Equal(t, "premium-black-pepper", products[0].Slug)
			assert.Equal(t, "coorg-signature-collection", products[1].Slug)
		}
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		repo := seededRepo(t)

		p, err := repo.GetProductByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("GetBySlug", func(t *testing.T) {
		repo := seededRepo(t)

		p, err := repo.GetProductBySlug(ctx, "whole-cloves")
		assert.NoError(t, err)
		if assert.NotNil(t, p) {
			assert.Equal(t, 320.0, p.Price)
			assert.Nil(t, p.DiscountPrice)
		}
	})

	t.Run("Create_DuplicateSlug", func(t *testing.T) {
		repo := seededRepo(t)

		_, err := repo.CreateProduct(ctx, CreateProductParams{Name: "Dup", Slug: "whole-cloves", Price: 1})
		assert.ErrorIs(t, err, ErrSlugTaken)
	})
}

func TestEffectivePrice(t *testing.T) {
	t.Run("DiscountWins", func(t *testing.T) {
		p := Product{Price: 350, DiscountPrice: ptrF(420)}
		assert.Equal(t, 420.0, EffectivePrice(p))
	})

	t.Run("FallsBackToPrice", func(t *testing.T) {
		p := Product{Price: 480}
		assert.Equal(t, 480.0, EffectivePrice(p))
	})
}
