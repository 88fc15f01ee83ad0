package commands

import (
	"errors"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when an UpdateOrderCommand
// was not created via NewUpdateOrderCommand.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to move an order to a target status
// and replace its item list with the submitted one.
type UpdateOrderCommand struct {
	orderID int64
	status  order.Status
	items   []order.ItemRequest

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an update command. The target status must be
// a known status; whether the transition is legal is decided against the
// loaded order, not here.
func NewUpdateOrderCommand(orderID int64, status order.Status, items []order.ItemRequest) (UpdateOrderCommand, error) {
	if orderID <= 0 {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	if err := status.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}
	for _, req := range items {
		if err := req.Validate(); err != nil {
			return UpdateOrderCommand{}, err
		}
	}

	return UpdateOrderCommand{
		orderID: orderID,
		status:  status,
		items:   items,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the requested target status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

// Items returns the submitted line item requests.
func (c UpdateOrderCommand) Items() []order.ItemRequest {
	return c.items
}
