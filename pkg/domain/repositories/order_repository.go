package repositories

import (
	"context"

	"github.com/stitchworks/orderplan/pkg/domain/entities"
)

// OrderRepository provides access to stored production orders
type OrderRepository interface {
	Get(ctx context.Context, id string) (*entities.Order, error)
	List(ctx context.Context) ([]*entities.Order, error)
	Save(ctx context.Context, order *entities.Order) error
	Delete(ctx context.Context, id string) error
}
