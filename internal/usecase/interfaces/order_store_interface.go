package interfaces

import (
	"context"

	"production_scheduler/internal/domain/entities"
)

// IOrderStore abstracts the row store holding the order book.
//
// The store has no foreign keys and no concurrency control:
//   - ReadAll returns every row of the orders table, malformed ones included
//   - Upsert overwrites the row with the same ID (last writer wins)

type IOrderStore interface {
	ReadAll(ctx context.Context) ([]entities.Order, error)
	Upsert(ctx context.Context, o entities.Order) error
}
