package catalog

// CategoryView is the display shape of a category used by listing endpoints.
type CategoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ProductListView is the lightweight product shape shown inside a category.
// Description and category id are deliberately omitted.
type ProductListView struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	URL      string  `json:"url"`
	Currency string  `json:"currency"`
}

// ProductDetailView is the full product shape, including description and the
// owning category id.
type ProductDetailView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  int64   `json:"category_id"`
	URL         string  `json:"url"`
	Currency    string  `json:"currency"`
}

// CategoryDetailView bundles a category with its products.
type CategoryDetailView struct {
	Category CategoryView      `json:"category"`
	Products []ProductListView `json:"products"`
}

func NewCategoryView(category Category) CategoryView {
	return CategoryView{
		ID:   category.ID,
		Name: category.Name,
		URL:  category.URL,
	}
}

func NewProductListView(product Product) ProductListView {
	return ProductListView{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		URL:      product.URL,
		Currency: currencyOrDefault(product.Currency),
	}
}

func NewProductDetailView(product Product) ProductDetailView {
	return ProductDetailView{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		CategoryID:  product.CategoryID,
		URL:         product.URL,
		Currency:    currencyOrDefault(product.Currency),
	}
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return DefaultCurrency
	}
	return currency
}
