package services

import (
	"context"

	"orderservice/internal/core/domain/model/item"
	"orderservice/internal/core/domain/model/order"
)

// ItemCatalog is the lookup collaborator the reconciler needs to resolve
// catalog items referenced for the first time. The persistence adapter's
// item repository satisfies it.
type ItemCatalog interface {
	// FindByID resolves a catalog item, returning errs.ObjectNotFoundError
	// (naming the id) when no such item exists.
	FindByID(ctx context.Context, id int64) (*item.Item, error)
}

// ItemReconciler is a domain service that merges a submitted item list
// against an order's existing items.
//
// Merge semantics:
//   - Identity is the referenced catalog item, not the surrogate row id
//   - An incoming request matching an existing item updates that item's
//     quantity in place, preserving its identity and back-reference
//   - An incoming request for a new catalog item resolves the item through
//     the catalog and creates a fresh OrderItem; an unknown catalog item
//     fails the whole merge with a not-found error naming the id
//   - Existing items absent from the incoming list are dropped
//   - The result is ordered by the incoming requests, reflecting the latest
//     submitted intent
type ItemReconciler struct{}

// NewItemReconciler creates an ItemReconciler instance.
func NewItemReconciler() ItemReconciler {
	return ItemReconciler{}
}

// Reconcile merges incoming item requests against the existing items of an
// order. It validates every request before touching the catalog, so invalid
// input never results in partial lookups.
func (r ItemReconciler) Reconcile(
	ctx context.Context,
	existing []*order.OrderItem,
	incoming []order.ItemRequest,
	catalog ItemCatalog,
) ([]*order.OrderItem, error) {
	for _, req := range incoming {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}

	// Last write wins if duplicates exist, though duplicates should not occur.
	existingByItemID := make(map[int64]*order.OrderItem, len(existing))
	for _, it := range existing {
		existingByItemID[it.ItemID()] = it
	}

	merged := make([]*order.OrderItem, 0, len(incoming))
	for _, req := range incoming {
		if current, ok := existingByItemID[req.ItemID]; ok {
			if err := current.ChangeQuantity(req.Quantity); err != nil {
				return nil, err
			}
			merged = append(merged, current)
			continue
		}

		if _, err := catalog.FindByID(ctx, req.ItemID); err != nil {
			return nil, err
		}

		created, err := order.NewOrderItem(req.ItemID, req.Quantity)
		if err != nil {
			return nil, err
		}
		merged = append(merged, created)
	}

	return merged, nil
}
