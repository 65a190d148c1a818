package transport

import (
	"net/http"
	"testing"

	"whitepepper-be/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestCatalogHandler_Categories(t *testing.T) {
	env := newTestEnv(t)

	t.Run("List", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/categories", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]catalog.Category](t, rec), 5)
	})

	t.Run("BySlug", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/categories/cardamom", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Cardamom", decode[catalog.Category](t, rec).Name)
	})

	t.Run("BySlug_NotFound", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/categories/saffron", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCatalogHandler_Products(t *testing.T) {
	env := newTestEnv(t)

	t.Run("ListAll", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/products", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]catalog.Product](t, rec), 6)
	})

	t.Run("FilterByCategory", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/products?category=5", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]catalog.Product](t, rec), 2)
	})

	t.Run("InvalidCategory", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/products?category=gift", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Search", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/products?search=cinnamon", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		products := decode[[]catalog.Product](t, rec)
		if assert.Len(t, products, 1) {
			assert.Equal(t, "ceylon-cinnamon", products[0].Slug)
		}
	})

	t.Run("FeaturedWithLimit", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/products?featured=true&limit=3", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]catalog.Product](t, rec), 3)
	})

	t.Run("BestSellers", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/products/best-sellers?limit=8", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]catalog.Product](t, rec), 2)
	})

	t.Run("NewArrivals", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/products/new-arrivals", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]catalog.Product](t, rec), 1)
	})

	t.Run("BySlug_AttachesCategory", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/products/premium-black-pepper", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		detail := decode[catalog.ProductWithCategory](t, rec)
		assert.Equal(t, "Premium Black Pepper", detail.Name)
		if assert.NotNil(t, detail.Category) {
			assert.Equal(t, "black-pepper", detail.Category.Slug)
		}
	})

	t.Run("BySlug_NotFound", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/products/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
