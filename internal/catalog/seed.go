package catalog

import (
	"context"
	"fmt"
)

func ptrF(v float64) *float64 { return &v }
func ptrU(v uint) *uint       { return &v }

// Seed loads the storefront's initial categories and products. Intended for
// the in-memory backend at startup and for the migrate command.
func Seed(ctx context.Context, repo Repository) error {
	categories := []CreateCategoryParams{
		{
			Name:        "Black Pepper",
			Description: "The king of spices from Coorg's finest estates",
			Slug:        "black-pepper",
			ImageURL:    "https://images.unsplash.com/photo-1615485500704-8e990f9921cf",
		},
		{
			Name:        "Cardamom",
			Description: "Fragrant green pods with intense flavor",
			Slug:        "cardamom",
			ImageURL:    "https://images.unsplash.com/photo-1599421498111-ad70bebb5a6c",
		},
		{
			Name:        "Cinnamon",
			Description: "Premium Ceylon cinnamon sticks",
			Slug:        "cinnamon",
			ImageURL:    "https://images.unsplash.com/photo-1583865149747-67fb7a122dd1",
		},
		{
			Name:        "Cloves",
			Description: "Aromatic whole cloves for intense flavor",
			Slug:        "cloves",
			ImageURL:    "https://images.unsplash.com/photo-1599817093940-20cbde27a196",
		},
		{
			Name:        "Gift Collections",
			Description: "Curated spice sets in elegant packaging",
			Slug:        "gift-collections",
			ImageURL:    "https://images.unsplash.com/photo-1589881133595-a3c085cb731d",
		},
	}

	for _, c := range categories {
		if _, err := repo.CreateCategory(ctx, c); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Slug, err)
		}
	}

	products := []CreateProductParams{
		{
			Name:          "Premium Black Pepper",
			Description:   "Hand-picked from Coorg's finest estates",
			Price:         350,
			DiscountPrice: ptrF(420),
			ImageURL:      "https://images.unsplash.com/photo-1612100538881-e667468b570d",
			CategoryID:    ptrU(1),
			Featured:      true,
			InStock:       true,
			Weight:        "100g",
			Rating:        4.5,
			ReviewCount:   142,
			Slug:          "premium-black-pepper",
			IsBestSeller:  true,
		},
		{
			Name:        "Green Cardamom Pods",
			Description: "Aromatic pods with intense flavor notes",
			Price:       480,
			ImageURL:    "https://images.unsplash.com/photo-1605197153361-1a187c396357",
			CategoryID:  ptrU(2),
			Featured:    true,
			InStock:     true,
			Weight:      "50g",
			Rating:      5.0,
			ReviewCount: 98,
			Slug:        "green-cardamom-pods",
		},
		{
			Name:         "Ceylon Cinnamon",
			Description:  "Premium Ceylon cinnamon sticks",
			Price:        390,
			ImageURL:     "https://images.unsplash.com/photo-1583865149747-67fb7a122dd1",
			CategoryID:   ptrU(3),
			Featured:     true,
			InStock:      true,
			Weight:       "75g",
			Rating:       4.0,
			ReviewCount:  65,
			Slug:         "ceylon-cinnamon",
			IsNewProduct: true,
		},
		{
			Name:        "Whole Cloves",
			Description: "Aromatic whole cloves for intense flavor",
			Price:       320,
			ImageURL:    "https://images.unsplash.com/photo-1599817093940-20cbde27a196",
			CategoryID:  ptrU(4),
			Featured:    true,
			InStock:     true,
			Weight:      "50g",
			Rating:      4.5,
			ReviewCount: 87,
			Slug:        "whole-cloves",
		},
		{
			Name:          "Coorg Signature Collection",
			Description:   "A handcrafted wooden box containing our six signature spices, perfect for the discerning home chef.",
			Price:         1499,
			DiscountPrice: ptrF(1899),
			ImageURL:      "https://images.unsplash.com/photo-1608613527770-cb08bb7a67a9",
			CategoryID:    ptrU(5),
			Featured:      true,
			InStock:       true,
			Weight:        "350g",
			Rating:        4.8,
			ReviewCount:   56,
			Slug:          "coorg-signature-collection",
			IsBestSeller:  true,
		},
		{
			Name:          "Chef's Essential Box",
			Description:   "A carefully curated selection of everyday spices for the passionate home cook.",
			Price:         999,
			DiscountPrice: ptrF(1299),
			ImageURL:      "https://images.unsplash.com/photo-1596040033229-a9821ebd058d",
			CategoryID:    ptrU(5),
			Featured:      true,
			InStock:       true,
			Weight:        "250g",
			Rating:        4.6,
			ReviewCount:   42,
			Slug:          "chefs-essential-box",
		},
	}

	for _, p := range products {
		if _, err := repo.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Slug, err)
		}
	}

	return nil
}
