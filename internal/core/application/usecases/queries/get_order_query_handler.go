package queries

import (
	"context"

	"orderservice/internal/core/ports"
)

// GetOrderQueryHandler serves point reads of a single order.
// The read does not mutate anything; enrichment failures propagate because
// the caller's identity is required for the response.
type GetOrderQueryHandler struct {
	orders     ports.OrderRepository
	userClient ports.UserClient
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(orders ports.OrderRepository, userClient ports.UserClient) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, userClient: userClient}
}

// Handle loads the order with its items and attaches the resolved caller.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	loaded, err := h.orders.GetWithItems(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	caller, err := h.userClient.GetByEmail(ctx, query.Credentials(), query.Credentials().Email())
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(loaded, caller), nil
}
