package order

import (
	"errors"
	"fmt"
	"time"

	"orderservice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrInvalidStatusTransition is the sentinel for status transitions rejected
	// by the state machine. Use errors.Is against it for classification; the
	// concrete InvalidStatusTransitionError names both statuses.
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// InvalidStatusTransitionError is returned when a requested status change is
// not permitted by the order lifecycle state machine.
type InvalidStatusTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// Order represents a customer's purchase record. It is the aggregate root that
// manages the order lifecycle from creation through delivery or cancellation.
//
// Order follows these invariants:
//   - Must belong to an owning user
//   - Status transitions follow the lifecycle state machine (see Status)
//   - Creation date is set once, at creation, and never mutated
//   - Items are replaced as a whole via reconciliation, never patched piecemeal
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. The persistence identifier is assigned
// by the store on creation and is immutable afterwards.
type Order struct {
	// id is the store-assigned identifier (0 until persisted)
	id int64

	// userID identifies the owning user
	userID int64

	// status is the current state in the order lifecycle
	status Status

	// creationDate is the date the order was placed (date precision, UTC)
	creationDate time.Time

	// items is the ordered item list; ordering reflects the latest submitted intent
	items []*OrderItem

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order owned by the given user, in StatusNew, dated
// with the given creation date (truncated to date precision in UTC). The
// identifier is left unset; it is assigned by the store on first save.
func NewOrder(userID int64, creationDate time.Time) (*Order, error) {
	o := &Order{
		status:        StatusNew,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setCreationDate(creationDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persisted state.
// All invariants are re-validated so corrupt rows surface as errors
// instead of invalid aggregates.
func RestoreOrder(id, userID int64, status Status, creationDate time.Time, items []*OrderItem) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(userID, creationDate)
	if err != nil {
		return nil, err
	}

	o.id = id
	o.status = status

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}
	o.items = items

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Call it when reconstructing orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their persistence identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the store-assigned identifier, 0 for unsaved orders.
func (o *Order) ID() int64 {
	return o.id
}

// UserID returns the identifier of the owning user.
func (o *Order) UserID() int64 {
	return o.userID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreationDate returns the date the order was placed.
func (o *Order) CreationDate() time.Time {
	return o.creationDate
}

// Items returns the current item list in submission order.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// ChangeStatus transitions the order to target after consulting the state
// machine. On a disallowed pair it returns an InvalidStatusTransitionError
// naming both statuses and leaves the order untouched.
func (o *Order) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(target) {
		return &InvalidStatusTransitionError{From: o.status, To: target}
	}

	o.status = target
	return nil
}

// ReplaceItems swaps the order's item list for the reconciled one and binds
// every item to this order. Full-replace semantics: items absent from the new
// list are dropped.
func (o *Order) ReplaceItems(items []*OrderItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	for _, item := range items {
		item.bindTo(o.id)
	}
	o.items = items
	return nil
}

func (o *Order) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsRequiredError("userID")
	}
	o.userID = userID
	return nil
}

func (o *Order) setCreationDate(creationDate time.Time) error {
	if creationDate.IsZero() {
		return errs.NewValueIsRequiredError("creationDate")
	}
	o.creationDate = creationDate.UTC().Truncate(24 * time.Hour)
	return nil
}
