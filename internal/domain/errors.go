package domain

import "errors"

var (
	// ErrEmptyCart indicates checkout was invoked on a cart with no items.
	ErrEmptyCart = errors.New("Cart is empty.")
	// ErrInsufficientBalance indicates the customer cannot cover the total.
	ErrInsufficientBalance = errors.New("Insufficient balance.")
)

// ExpiredProductError reports a cart product whose expiry date has passed.
type ExpiredProductError struct {
	Name string
}

func (e *ExpiredProductError) Error() string {
	return "Product expired: " + e.Name
}

// InsufficientStockError reports a requested quantity above current stock.
type InsufficientStockError struct {
	Name string
}

func (e *InsufficientStockError) Error() string {
	return "Not enough stock for product: " + e.Name
}
