package commands

import (
	"context"
	"log/slog"
	"time"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/services"
	"orderservice/internal/core/ports"

	"github.com/google/uuid"
)

// UpdateOrderCommandHandler handles status transitions and item replacement
// for an existing order.
//
// The transition is validated against the loaded order before anything is
// mutated; an illegal pair fails the operation with no writes. Item
// reconciliation and the order write share one transaction. The owner used
// for enrichment is resolved by id after the save, because the caller
// performing an update is not necessarily the order's owner.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	userClient ports.UserClient
	reconciler services.ItemReconciler
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	userClient ports.UserClient,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		userClient: userClient,
		reconciler: services.NewItemReconciler(),
		publisher:  publisher,
		logger:     logger.With("component", "update_order_command_handler"),
	}
}

// Handle processes the order update command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (OrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.GetWithItems(ctx, cmd.OrderID())
	if err != nil {
		return OrderResult{}, err
	}

	if err = existing.ChangeStatus(cmd.Status()); err != nil {
		return OrderResult{}, err
	}

	items, err := h.reconciler.Reconcile(ctx, existing.Items(), cmd.Items(), uow.ItemCatalog())
	if err != nil {
		return OrderResult{}, err
	}

	if err = existing.ReplaceItems(items); err != nil {
		return OrderResult{}, err
	}

	saved, err := repo.Update(ctx, existing)
	if err != nil {
		return OrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResult{}, err
	}

	h.publishChanged(ctx, saved, ports.OrderActionUpdated)

	// Enrichment happens strictly after the commit: if the owner lookup
	// fails here, the update stands and the failure propagates.
	owner, err := h.userClient.GetByID(ctx, saved.UserID())
	if err != nil {
		return OrderResult{}, err
	}

	return OrderResult{Order: saved, User: owner}, nil
}

func (h *UpdateOrderCommandHandler) publishChanged(ctx context.Context, saved *order.Order, action string) {
	event := ports.OrderChangedEvent{
		EventID:   uuid.NewString(),
		OrderID:   saved.ID(),
		UserID:    saved.UserID(),
		Status:    saved.Status(),
		Action:    action,
		ChangedAt: time.Now().UTC(),
	}

	if err := h.publisher.PublishOrderChanged(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order changed event",
			"order_id", saved.ID(), "action", action, "error", err)
	}
}
