package queries

import (
	"errors"

	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when a GetOrderQuery was not
// created via NewGetOrderQuery.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its items, enriched with the
// authenticated caller resolved from the user service.
type GetOrderQuery struct {
	orderID int64
	creds   ports.Credentials

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a point read query for one order.
func NewGetOrderQuery(orderID int64, creds ports.Credentials) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	if err := creds.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		creds:   creds,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to read.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// Credentials returns the authenticated caller's credentials.
func (q GetOrderQuery) Credentials() ports.Credentials {
	return q.creds
}
