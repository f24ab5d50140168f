package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Service interface {
	ListCategories(ctx context.Context) ([]CategoryView, error)
	GetCategoryProducts(ctx context.Context, categoryID int64) (*CategoryDetailView, error)
	GetProduct(ctx context.Context, productID int64) (*ProductDetailView, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryView, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to fetch categories in repository")
		return nil, fmt.Errorf("service: failed to fetch categories: %w", err)
	}

	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, NewCategoryView(category))
	}

	log.Debug().Int("count", len(views)).Msg("service: categories listed")

	return views, nil
}

func (s *service) GetCategoryProducts(ctx context.Context, categoryID int64) (*CategoryDetailView, error) {
	category, err := s.repo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		var notFound *CategoryNotFoundError
		if errors.As(err, &notFound) {
			log.Warn().Int64("category_id", categoryID).Msg("service: category not found")
			return nil, err
		}

		log.Error().Err(err).Int64("category_id", categoryID).Msg("service: failed to fetch category in repository")
		return nil, fmt.Errorf("service: failed to fetch category: %w", err)
	}

	products, err := s.repo.GetProductsByCategory(ctx, categoryID)
	if err != nil {
		log.Error().Err(err).Int64("category_id", categoryID).Msg("service: failed to fetch category products in repository")
		return nil, fmt.Errorf("service: failed to fetch category products: %w", err)
	}

	productViews := make([]ProductListView, 0, len(products))
	for _, product := range products {
		productViews = append(productViews, NewProductListView(product))
	}

	log.Debug().Int64("category_id", categoryID).Int("products", len(productViews)).Msg("service: category products assembled")

	return &CategoryDetailView{
		Category: NewCategoryView(*category),
		Products: productViews,
	}, nil
}

func (s *service) GetProduct(ctx context.Context, productID int64) (*ProductDetailView, error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		var notFound *ProductNotFoundError
		if errors.As(err, &notFound) {
			log.Warn().Int64("product_id", productID).Msg("service: product not found")
			return nil, err
		}

		log.Error().Err(err).Int64("product_id", productID).Msg("service: failed to fetch product in repository")
		return nil, fmt.Errorf("service: failed to fetch product: %w", err)
	}

	view := NewProductDetailView(*product)

	return &view, nil
}
