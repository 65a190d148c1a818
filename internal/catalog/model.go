package catalog

type Category struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	ImageURL    string `json:"imageUrl"`
}

type Product struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice"`
	ImageURL      string   `json:"imageUrl"`
	CategoryID    *uint    `json:"categoryId"`
	Featured      bool     `json:"featured"`
	InStock       bool     `json:"inStock"`
	Weight        string   `json:"weight"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Slug          string   `json:"slug"`
	IsNewProduct  bool     `json:"isNewProduct"`
	IsBestSeller  bool     `json:"isBestSeller"`
}

// ProductWithCategory is the detail-view shape: the category is resolved
// from CategoryID, or nil when the product has none or the id dangles.
type ProductWithCategory struct {
	Product
	Category *Category `json:"category"`
}

type CreateCategoryParams struct {
	Name        string
	Description string
	Slug        string
	ImageURL    string
}

type CreateProductParams struct {
	Name          string
	Description   string
	Price         float64
	DiscountPrice *float64
	ImageURL      string
	CategoryID    *uint
	Featured      bool
	InStock       bool
	Weight        string
	Rating        float64
	ReviewCount   int
	Slug          string
	IsNewProduct  bool
	IsBestSeller  bool
}

// EffectivePrice is the amount a cart line is charged for this product.
// DiscountPrice wins when present; every price computation in the system
// goes through this single rule.
func EffectivePrice(p Product) float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
