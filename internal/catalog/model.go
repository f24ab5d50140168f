package catalog

import "fmt"

// DefaultCurrency is applied to products that have no currency set.
const DefaultCurrency = "RUB"

type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	URL  string `json:"url" db:"url"`
}

type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"` // Используем float64 для денег, или специальный тип decimal
	Currency    string  `json:"currency" db:"currency"`
	URL         string  `json:"url" db:"url"`
	CategoryID  int64   `json:"category_id" db:"category_id"`
}

// CategoryNotFoundError is returned when a category lookup misses.
// The message is user-facing and rendered as-is by the HTTP layer.
type CategoryNotFoundError struct {
	ID int64
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("Category with ID %d not found", e.ID)
}

// ProductNotFoundError is returned when a product lookup or an order item
// existence check misses.
type ProductNotFoundError struct {
	ID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Dish with ID %d not found", e.ID)
}
