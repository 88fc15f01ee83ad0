package ports

import (
	"context"

	"orderservice/internal/core/domain/model/item"
)

// ItemCatalog provides read access to the product catalog.
// The order workflow never writes catalog entries.
type ItemCatalog interface {
	// FindByID resolves a catalog item by its identifier.
	// Returns errs.ObjectNotFoundError naming the id when absent.
	FindByID(ctx context.Context, id int64) (*item.Item, error)
}
