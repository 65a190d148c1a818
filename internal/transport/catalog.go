package transport

import (
	"net/http"
	"strconv"

	"whitepepper-be/internal/catalog"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalog catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetCategoryBySlug(c echo.Context) error {
	category, err := h.catalog.GetCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var filter catalog.ProductFilter

	if raw := c.QueryParam("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid category ID"})
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	if raw := c.QueryParam("search"); raw != "" {
		filter.Search = &raw
	}
	if c.QueryParam("featured") == "true" {
		filter.Featured = true
		filter.Limit = parseLimit(c)
	}

	products, err := h.catalog.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) ListBestSellers(c echo.Context) error {
	products, err := h.catalog.ListBestSellers(c.Request().Context(), parseLimit(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) ListNewArrivals(c echo.Context) error {
	products, err := h.catalog.ListNewArrivals(c.Request().Context(), parseLimit(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProductBySlug(c echo.Context) error {
	detail, err := h.catalog.GetProductDetail(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

func parseLimit(c echo.Context) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
