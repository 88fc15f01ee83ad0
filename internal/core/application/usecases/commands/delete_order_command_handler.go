package commands

import (
	"context"
	"log/slog"
	"time"

	"orderservice/internal/core/ports"

	"github.com/google/uuid"
)

// DeleteOrderCommandHandler handles wholesale order deletion.
// Deleting a missing order is a not-found error; no enrichment is performed.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "delete_order_command_handler"),
	}
}

// Handle processes the order deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := ports.OrderChangedEvent{
		EventID:   uuid.NewString(),
		OrderID:   existing.ID(),
		UserID:    existing.UserID(),
		Status:    existing.Status(),
		Action:    ports.OrderActionDeleted,
		ChangedAt: time.Now().UTC(),
	}

	if err = h.publisher.PublishOrderChanged(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order changed event",
			"order_id", existing.ID(), "action", ports.OrderActionDeleted, "error", err)
	}

	return nil
}
