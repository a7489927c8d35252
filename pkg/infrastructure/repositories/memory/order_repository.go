package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/stitchworks/orderplan/pkg/domain/entities"
	"github.com/stitchworks/orderplan/pkg/domain/repositories"
)

// OrderRepository provides in-memory order storage
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*entities.Order
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]*entities.Order),
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// Get returns the stored order for an id
func (r *OrderRepository) Get(ctx context.Context, id string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[id]
	if !exists {
		return nil, fmt.Errorf("order not found: %s", id)
	}
	return order, nil
}

// List returns all stored orders sorted by style reference
func (r *OrderRepository) List(ctx context.Context) ([]*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*entities.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].StyleRef < orders[j].StyleRef
	})
	return orders, nil
}

// Save stores an order, replacing any existing order with the same id
func (r *OrderRepository) Save(ctx context.Context, order *entities.Order) error {
	if order.ID == "" {
		return fmt.Errorf("order id cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
	return nil
}

// Delete removes an order. Deleting an unknown id is a no-op.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}
