// Package http is the inbound REST adapter. It binds wire requests to
// commands and queries, and maps domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler
	getOrderHandler     queries.GetOrderQueryHandler
	searchOrdersHandler queries.SearchOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		updateOrderHandler:  updateOrderHandler,
		deleteOrderHandler:  deleteOrderHandler,
		getOrderHandler:     getOrderHandler,
		searchOrdersHandler: searchOrdersHandler,
	}
}

// RegisterRoutes mounts the order API under /api/v1, guarded by auth.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	group := e.Group("/api/v1", auth)
	group.POST("/orders", s.CreateOrder)
	group.GET("/orders", s.SearchOrders)
	group.GET("/orders/:id", s.GetOrder)
	group.PUT("/orders/:id", s.UpdateOrder)
	group.DELETE("/orders/:id", s.DeleteOrder)
}

// CreateOrder handles POST /api/v1/orders - creates a new order for the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	creds, err := credentialsFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(creds, toItemRequests(request.Items))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderReply(queries.NewOrderResponse(result.Order, result.User)))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its owner.
func (s *Server) GetOrder(ctx echo.Context) error {
	creds, err := credentialsFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, creds)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderReply(response))
}

// SearchOrders handles GET /api/v1/orders - paged listing filtered by
// statuses and ids.
func (s *Server) SearchOrders(ctx echo.Context) error {
	creds, err := credentialsFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	filter, err := filterFromParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := pageFromParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewSearchOrdersQuery(filter, page, creds)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPageReply(result))
}

// UpdateOrder handles PUT /api/v1/orders/:id - applies a status transition
// and fully replaces the item list.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.ParseStatus(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, status, toItemRequests(request.Items))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderReply(queries.NewOrderResponse(result.Order, result.User)))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes an order and its items.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// filterFromParams builds the search filter from the statuses and ids query
// parameters. Both accept repeated parameters and comma-separated values.
func filterFromParams(ctx echo.Context) (order.Filter, error) {
	var filter order.Filter

	for _, raw := range splitParams(ctx.QueryParams()["statuses"]) {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return order.Filter{}, err
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	for _, raw := range splitParams(ctx.QueryParams()["ids"]) {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return order.Filter{}, errs.NewValueIsInvalidErrorWithCause("ids", err)
		}
		filter.IDs = append(filter.IDs, id)
	}

	return filter, nil
}

func pageFromParams(ctx echo.Context) (ports.PageRequest, error) {
	page, err := intParam(ctx, "page", 0)
	if err != nil {
		return ports.PageRequest{}, err
	}

	size, err := intParam(ctx, "size", 0)
	if err != nil {
		return ports.PageRequest{}, err
	}

	return ports.NewPageRequest(page, size)
}

func intParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return value, nil
}

func splitParams(values []string) []string {
	split := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				split = append(split, part)
			}
		}
	}
	return split
}

// writeError maps domain errors onto HTTP status codes. Unknown errors are
// reported as internal without leaking their message.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidStatusTransition):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrServiceUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
