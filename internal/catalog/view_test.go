package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vyanckus/food-delivery-api/internal/catalog"
)

func TestNewProductListView_OmitsDescriptionAndCategory(t *testing.T) {
	product := catalog.Product{
		ID:          10,
		Name:        "Margherita",
		Description: "Tomato sauce, mozzarella, fresh basil",
		Price:       450.0,
		Currency:    "RUB",
		URL:         "/pizza/margherita",
		CategoryID:  1,
	}

	view := catalog.NewProductListView(product)

	expected := catalog.ProductListView{
		ID:       10,
		Name:     "Margherita",
		Price:    450.0,
		URL:      "/pizza/margherita",
		Currency: "RUB",
	}
	require.Empty(t, cmp.Diff(expected, view))
}

func TestNewProductListView_DefaultCurrency(t *testing.T) {
	view := catalog.NewProductListView(catalog.Product{ID: 10, Name: "Margherita"})
	require.Equal(t, "RUB", view.Currency)
}

func TestNewProductDetailView_IncludesDescriptionAndCategory(t *testing.T) {
	product := catalog.Product{
		ID:          10,
		Name:        "Margherita",
		Description: "Tomato sauce, mozzarella, fresh basil",
		Price:       450.0,
		Currency:    "EUR",
		URL:         "/pizza/margherita",
		CategoryID:  1,
	}

	view := catalog.NewProductDetailView(product)

	require.Equal(t, "Tomato sauce, mozzarella, fresh basil", view.Description)
	require.Equal(t, int64(1), view.CategoryID)
	require.Equal(t, "EUR", view.Currency)
}

func TestNewCategoryView(t *testing.T) {
	view := catalog.NewCategoryView(catalog.Category{ID: 1, Name: "Pizza", URL: "/pizza"})
	require.Equal(t, catalog.CategoryView{ID: 1, Name: "Pizza", URL: "/pizza"}, view)
}
