package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyanckus/food-delivery-api/internal/catalog"
)

type mockCatalogService struct {
	ListCategoriesFunc      func(ctx context.Context) ([]catalog.CategoryView, error)
	GetCategoryProductsFunc func(ctx context.Context, categoryID int64) (*catalog.CategoryDetailView, error)
	GetProductFunc          func(ctx context.Context, productID int64) (*catalog.ProductDetailView, error)
}

func (m *mockCatalogService) ListCategories(ctx context.Context) ([]catalog.CategoryView, error) {
	return m.ListCategoriesFunc(ctx)
}

func (m *mockCatalogService) GetCategoryProducts(ctx context.Context, categoryID int64) (*catalog.CategoryDetailView, error) {
	return m.GetCategoryProductsFunc(ctx, categoryID)
}

func (m *mockCatalogService) GetProduct(ctx context.Context, productID int64) (*catalog.ProductDetailView, error) {
	return m.GetProductFunc(ctx, productID)
}

func newCatalogRouter(svc catalog.Service) *chi.Mux {
	r := chi.NewRouter()
	NewCatalogHandler(svc).RegisterRoutes(r)
	return r
}

func decodeErrorResponse(t *testing.T, body []byte) ErrorResponse {
	t.Helper()

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	return errResp
}

func TestCatalogHandler_ListCategories(t *testing.T) {
	tests := []struct {
		name           string
		listCategories func(ctx context.Context) ([]catalog.CategoryView, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			listCategories: func(ctx context.Context) ([]catalog.CategoryView, error) {
				return []catalog.CategoryView{
					{ID: 1, Name: "Pizza", URL: "/pizza"},
					{ID: 2, Name: "Salads", URL: "/salads"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":1,"name":"Pizza","url":"/pizza"},{"id":2,"name":"Salads","url":"/salads"}]`,
		},
		{
			name: "empty",
			listCategories: func(ctx context.Context) ([]catalog.CategoryView, error) {
				return []catalog.CategoryView{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCatalogRouter(&mockCatalogService{ListCategoriesFunc: tt.listCategories})

			req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

func TestCatalogHandler_ListCategories_InternalError(t *testing.T) {
	router := newCatalogRouter(&mockCatalogService{
		ListCategoriesFunc: func(ctx context.Context) ([]catalog.CategoryView, error) {
			return nil, assert.AnError
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	errResp := decodeErrorResponse(t, w.Body.Bytes())
	assert.Equal(t, "Internal server error", errResp.Message)
	assert.Equal(t, http.StatusInternalServerError, errResp.Status)
	assert.False(t, errResp.Timestamp.IsZero())
}

func TestCatalogHandler_GetCategoryProducts(t *testing.T) {
	tests := []struct {
		name                string
		id                  string
		getCategoryProducts func(ctx context.Context, categoryID int64) (*catalog.CategoryDetailView, error)
		expectedStatus      int
		expectedBody        string
		expectedErrMessage  string
	}{
		{
			name: "success",
			id:   "1",
			getCategoryProducts: func(ctx context.Context, categoryID int64) (*catalog.CategoryDetailView, error) {
				return &catalog.CategoryDetailView{
					Category: catalog.CategoryView{ID: 1, Name: "Pizza", URL: "/pizza"},
					Products: []catalog.ProductListView{
						{ID: 10, Name: "Margherita", Price: 450, URL: "/pizza/margherita", Currency: "RUB"},
						{ID: 11, Name: "Pepperoni", Price: 550, URL: "/pizza/pepperoni", Currency: "RUB"},
					},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"category":{"id":1,"name":"Pizza","url":"/pizza"},"products":[{"id":10,"name":"Margherita","price":450,"url":"/pizza/margherita","currency":"RUB"},{"id":11,"name":"Pepperoni","price":550,"url":"/pizza/pepperoni","currency":"RUB"}]}`,
		},
		{
			name: "not_found",
			id:   "42",
			getCategoryProducts: func(ctx context.Context, categoryID int64) (*catalog.CategoryDetailView, error) {
				return nil, &catalog.CategoryNotFoundError{ID: categoryID}
			},
			expectedStatus:     http.StatusNotFound,
			expectedErrMessage: "Category with ID 42 not found",
		},
		{
			name: "invalid_id",
			id:   "abc",
			// A malformed id must be rejected before the service is
			// reached; a call here would produce a 200 and fail the
			// status assertion.
			getCategoryProducts: func(ctx context.Context, categoryID int64) (*catalog.CategoryDetailView, error) {
				return nil, nil
			},
			expectedStatus:     http.StatusBadRequest,
			expectedErrMessage: "Invalid id parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCatalogRouter(&mockCatalogService{GetCategoryProductsFunc: tt.getCategoryProducts})

			req := httptest.NewRequest(http.MethodGet, "/catalog/"+tt.id, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedErrMessage != "" {
				errResp := decodeErrorResponse(t, w.Body.Bytes())
				assert.Equal(t, tt.expectedErrMessage, errResp.Message)
				assert.Equal(t, tt.expectedStatus, errResp.Status)
				assert.False(t, errResp.Timestamp.IsZero())
			}
		})
	}
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	tests := []struct {
		name               string
		id                 string
		getProduct         func(ctx context.Context, productID int64) (*catalog.ProductDetailView, error)
		expectedStatus     int
		expectedBody       string
		expectedErrMessage string
	}{
		{
			name: "success",
			id:   "10",
			getProduct: func(ctx context.Context, productID int64) (*catalog.ProductDetailView, error) {
				return &catalog.ProductDetailView{
					ID:          10,
					Name:        "Margherita",
					Description: "Tomato sauce, mozzarella, fresh basil",
					Price:       450,
					CategoryID:  1,
					URL:         "/pizza/margherita",
					Currency:    "RUB",
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":10,"name":"Margherita","description":"Tomato sauce, mozzarella, fresh basil","price":450,"category_id":1,"url":"/pizza/margherita","currency":"RUB"}`,
		},
		{
			name: "not_found",
			id:   "99",
			getProduct: func(ctx context.Context, productID int64) (*catalog.ProductDetailView, error) {
				return nil, &catalog.ProductNotFoundError{ID: productID}
			},
			expectedStatus:     http.StatusNotFound,
			expectedErrMessage: "Dish with ID 99 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCatalogRouter(&mockCatalogService{GetProductFunc: tt.getProduct})

			req := httptest.NewRequest(http.MethodGet, "/product/"+tt.id, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedErrMessage != "" {
				errResp := decodeErrorResponse(t, w.Body.Bytes())
				assert.Equal(t, tt.expectedErrMessage, errResp.Message)
				assert.Equal(t, tt.expectedStatus, errResp.Status)
			}
		})
	}
}
