package commands

import (
	"errors"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created via NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new order for the
// authenticated caller, with the submitted line items.
type CreateOrderCommand struct {
	creds ports.Credentials
	items []order.ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the caller credentials and every item request.
func NewCreateOrderCommand(creds ports.Credentials, items []order.ItemRequest) (CreateOrderCommand, error) {
	if err := creds.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	for _, req := range items {
		if err := req.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return CreateOrderCommand{
		creds: creds,
		items: items,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Credentials returns the authenticated caller's credentials.
func (c CreateOrderCommand) Credentials() ports.Credentials {
	return c.creds
}

// Items returns the submitted line item requests.
func (c CreateOrderCommand) Items() []order.ItemRequest {
	return c.items
}
