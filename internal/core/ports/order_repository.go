package ports

import (
	"context"

	"orderservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate, including its items, and returns
	// the saved aggregate with store-assigned identifiers.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order aggregate with
	// full-replace item semantics: rows for retained items are updated in
	// place, rows absent from the aggregate are removed. Returns the saved
	// aggregate.
	Update(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order by its identifier, without items.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetWithItems retrieves an order with its item list eagerly populated.
	GetWithItems(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes an order and its items.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Delete(ctx context.Context, id int64) error

	// FindPage retrieves one page of orders matching the filter, items
	// eagerly populated, ordered by identifier. The filter's clauses are
	// translated into the store's native query form so filtering composes
	// with pagination inside the store.
	FindPage(ctx context.Context, filter order.Filter, page PageRequest) (Page[*order.Order], error)
}
