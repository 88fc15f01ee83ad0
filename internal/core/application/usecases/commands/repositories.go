// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: validation, transaction
// management, persistence, and post-commit enrichment/notification.
package commands

import (
	"context"

	"orderservice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ItemCatalogFactory provides access to the item catalog within a transaction.
	ItemCatalogFactory interface {
		ItemCatalog() ports.ItemCatalog
	}

	// OrderUoW manages transactions for order operations. The catalog is part
	// of the same boundary so that item reconciliation reads and the order
	// write commit atomically.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ItemCatalogFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
