package repositories

import (
	"context"
	"sort"
	"sync"

	"airstore/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository,
// used in tests and as the "memory" storage driver.
type MockOrderRepository struct {
	orders map[string]models.Order // keyed by order number
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Insert persists a new order.
func (r *MockOrderRepository) Insert(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.OrderNumber] = *order
	return nil
}

// FindByOrderNumber retrieves a single order by its human-facing number.
func (r *MockOrderRepository) FindByOrderNumber(_ context.Context, orderNumber string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderNumber]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

// List returns a page of orders, most recently created first.
func (r *MockOrderRepository) List(_ context.Context, limit, skip int) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		all = append(all, order)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if skip >= len(all) {
		return []models.Order{}, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// Count returns the total number of stored orders.
func (r *MockOrderRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.orders)), nil
}
