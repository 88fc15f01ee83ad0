package order

import (
	"fmt"

	"orderservice/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	New ────────> Processing ────> Shipped ────> Delivered
//	 │                 │              │
//	 └────────────────-┴──────────────┴────────> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them,
// including a transition to the same status.
//
// Status is persisted and serialized by its string name, matching the
// wire and storage representation used across services.
type Status string

const (
	// StatusNew is the initial status assigned when an order is created.
	StatusNew Status = "NEW"

	// StatusProcessing indicates the order has been accepted and is being prepared.
	StatusProcessing Status = "PROCESSING"

	// StatusShipped indicates the order has left the warehouse.
	StatusShipped Status = "SHIPPED"

	// StatusDelivered indicates the order reached the customer. Terminal.
	StatusDelivered Status = "DELIVERED"

	// StatusCancelled indicates the order was cancelled. Terminal.
	StatusCancelled Status = "CANCELLED"
)

// AllStatuses lists every valid status, in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusNew, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
}

// ParseStatus converts a string into a Status.
// Returns a ValueIsInvalidError for anything that is not a known status name.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the known statuses.
func (s Status) Validate() error {
	switch s {
	case StatusNew, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String returns the status name. Implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether the state machine permits moving from
// the current status to target. It is a pure function, total over all
// (current, target) pairs; unknown statuses allow no transitions.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusNew:
		return target == StatusProcessing || target == StatusCancelled
	case StatusProcessing:
		return target == StatusShipped || target == StatusCancelled
	case StatusShipped:
		return target == StatusDelivered || target == StatusCancelled
	default:
		// Delivered and Cancelled are terminal.
		return false
	}
}
