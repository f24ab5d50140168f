package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)
	GetProductsByCategory(ctx context.Context, categoryID int64) ([]Product, error)
	GetProductByID(ctx context.Context, id int64) (*Product, error)
	ProductExists(ctx context.Context, id int64) (bool, error)
}

type postgresRepository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	query := `
		SELECT id, name, url
		FROM categories
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var category Category
		err := rows.Scan(&category.ID, &category.Name, &category.URL)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating categories: %w", err)
	}

	return categories, nil
}

func (r *postgresRepository) GetCategoryByID(ctx context.Context, id int64) (*Category, error) {
	query := `
		SELECT id, name, url
		FROM categories
		WHERE id = $1
	`

	var category Category
	err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name, &category.URL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &CategoryNotFoundError{ID: id}
		}

		return nil, fmt.Errorf("repository: failed to select category by id %d: %w", id, err)
	}

	return &category, nil
}

func (r *postgresRepository) GetProductsByCategory(ctx context.Context, categoryID int64) ([]Product, error) {
	query := `
		SELECT id, name, description, price, currency, url, category_id
		FROM products
		WHERE category_id = $1
	`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query products for category id %d: %w", categoryID, err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var product Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Currency,
			&product.URL,
			&product.CategoryID,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan product for category id %d: %w", categoryID, err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products for category id %d: %w", categoryID, err)
	}

	return products, nil
}

func (r *postgresRepository) GetProductByID(ctx context.Context, id int64) (*Product, error) {
	query := `
		SELECT id, name, description, price, currency, url, category_id
		FROM products
		WHERE id = $1
	`

	var product Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Currency,
		&product.URL,
		&product.CategoryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ProductNotFoundError{ID: id}
		}

		return nil, fmt.Errorf("repository: failed to select product by id %d: %w", id, err)
	}

	return &product, nil
}

func (r *postgresRepository) ProductExists(ctx context.Context, id int64) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repository: failed to check product existence for id %d: %w", id, err)
	}

	return exists, nil
}
