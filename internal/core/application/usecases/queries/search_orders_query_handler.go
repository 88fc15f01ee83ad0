package queries

import (
	"context"
	"log/slog"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/model/user"
	"orderservice/internal/core/ports"
)

// SearchOrdersQueryHandler serves paged, filtered order listings.
//
// Owners are resolved in one bulk call for the distinct user ids present on
// the page. Listing enrichment is best effort: if the bulk lookup fails or an
// owner is missing from the result, the affected orders are returned with an
// absent owner rather than failing the listing.
type SearchOrdersQueryHandler struct {
	orders     ports.OrderRepository
	userClient ports.UserClient
	logger     *slog.Logger
}

// NewSearchOrdersQueryHandler creates a handler for order search.
func NewSearchOrdersQueryHandler(
	orders ports.OrderRepository,
	userClient ports.UserClient,
	logger *slog.Logger,
) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{
		orders:     orders,
		userClient: userClient,
		logger:     logger.With("component", "search_orders_query_handler"),
	}
}

// Handle executes the search and attaches owners from the bulk lookup.
func (h SearchOrdersQueryHandler) Handle(ctx context.Context, query SearchOrdersQuery) (ports.Page[OrderResponse], error) {
	if err := query.Validate(); err != nil {
		return ports.Page[OrderResponse]{}, err
	}

	page, err := h.orders.FindPage(ctx, query.Filter(), query.Page())
	if err != nil {
		return ports.Page[OrderResponse]{}, err
	}

	owners := h.resolveOwners(ctx, query, page)

	responses := make([]OrderResponse, 0, len(page.Items))
	for _, o := range page.Items {
		responses = append(responses, NewOrderResponse(o, owners[o.UserID()]))
	}

	return ports.Page[OrderResponse]{
		Items:      responses,
		Total:      page.Total,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

// resolveOwners bulk-resolves the distinct owner ids on the page.
// Never called with an empty id set; degrades to no owners on failure.
func (h SearchOrdersQueryHandler) resolveOwners(
	ctx context.Context,
	query SearchOrdersQuery,
	page ports.Page[*order.Order],
) map[int64]*user.User {
	seen := make(map[int64]struct{}, len(page.Items))
	ids := make([]int64, 0, len(page.Items))
	for _, o := range page.Items {
		if _, ok := seen[o.UserID()]; ok {
			continue
		}
		seen[o.UserID()] = struct{}{}
		ids = append(ids, o.UserID())
	}

	if len(ids) == 0 {
		return nil
	}

	owners, err := h.userClient.GetByIDs(ctx, query.Credentials(), ids)
	if err != nil {
		h.logger.WarnContext(ctx, "owner enrichment degraded for search results",
			"user_ids", ids, "error", err)
		return nil
	}

	return owners
}
