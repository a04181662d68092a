package interfaces

import (
	"context"
	"errors"

	"production_scheduler/internal/domain/entities"
)

// ErrRepositoryUnavailable marks a backing-store failure that no cached snapshot could absorb.
var ErrRepositoryUnavailable = errors.New("order repository unavailable")

// IOrderRepository is the cached view of the order book the use cases work against.
//
//   - GetAllOrders may serve a snapshot up to one TTL old, or an older one while the store is failing
//   - WriteOrder/WriteOrders make the next GetAllOrders observe the write

type IOrderRepository interface {
	GetAllOrders(ctx context.Context) ([]entities.Order, error)
	WriteOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	WriteOrders(ctx context.Context, orders []entities.Order) ([]entities.Order, error)
	Invalidate()
}
