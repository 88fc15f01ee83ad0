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

// CreateOrderCommandHandler handles the business logic for order creation.
//
// Flow: resolve the caller through the user service, build the order in NEW
// status dated today, reconcile the submitted items against an empty set,
// persist transactionally, publish an order-changed event, and return the
// saved order enriched with the already-resolved caller.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	userClient ports.UserClient
	reconciler services.ItemReconciler
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	userClient ports.UserClient,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		userClient: userClient,
		reconciler: services.NewItemReconciler(),
		publisher:  publisher,
		logger:     logger.With("component", "create_order_command_handler"),
	}
}

// Handle processes the order creation command.
// The caller is resolved before any write so the order can be stamped with
// its owner; remote failures here stop the operation without touching state.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (OrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResult{}, err
	}

	caller, err := h.userClient.GetByEmail(ctx, cmd.Credentials(), cmd.Credentials().Email())
	if err != nil {
		return OrderResult{}, err
	}

	newOrder, err := order.NewOrder(caller.ID, time.Now())
	if err != nil {
		return OrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return OrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := h.reconciler.Reconcile(ctx, nil, cmd.Items(), uow.ItemCatalog())
	if err != nil {
		return OrderResult{}, err
	}

	if err = newOrder.ReplaceItems(items); err != nil {
		return OrderResult{}, err
	}

	saved, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return OrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResult{}, err
	}

	h.publishChanged(ctx, saved, ports.OrderActionCreated)

	return OrderResult{Order: saved, User: caller}, nil
}

// publishChanged emits an order-changed event. Delivery is best effort: the
// committed write stands even if the broker is unreachable.
func (h *CreateOrderCommandHandler) publishChanged(ctx context.Context, saved *order.Order, action string) {
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
