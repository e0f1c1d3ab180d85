package repositories

import (
	"context"
	"errors"

	"airstore/internal/models"
)

// ErrOrderNotFound is returned by FindByOrderNumber when no order carries
// the requested number.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order data access. Orders are
// insert-only: no update or delete path exists in the checkout workflow.
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	// List returns up to limit orders starting at skip, most recently
	// created first.
	List(ctx context.Context, limit, skip int) ([]models.Order, error)
	Count(ctx context.Context) (int64, error)
}
