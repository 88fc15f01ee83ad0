package ports

import (
	"context"
	"time"

	"orderservice/internal/core/domain/model/order"
)

// Order change actions carried on published events.
const (
	OrderActionCreated = "created"
	OrderActionUpdated = "updated"
	OrderActionDeleted = "deleted"
)

// OrderChangedEvent notifies downstream consumers that an order changed.
// Published after the owning transaction commits; best effort.
type OrderChangedEvent struct {
	EventID   string       `json:"event_id"`
	OrderID   int64        `json:"order_id"`
	UserID    int64        `json:"user_id"`
	Status    order.Status `json:"status"`
	Action    string       `json:"action"`
	ChangedAt time.Time    `json:"changed_at"`
}

// EventPublisher publishes order change notifications.
type EventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}
