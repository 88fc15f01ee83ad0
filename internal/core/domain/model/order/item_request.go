package order

import (
	"errors"

	"orderservice/internal/pkg/errs"
)

// ItemRequest is the submitted intent for one line item: which catalog item
// and how many. Incoming requests drive reconciliation; their order is the
// order of the resulting item list.
type ItemRequest struct {
	ItemID   int64
	Quantity int
}

// Validate checks the request references a catalog item and carries a
// positive quantity.
func (r ItemRequest) Validate() error {
	var errd error
	if r.ItemID <= 0 {
		errd = errors.Join(errd, errs.NewValueIsRequiredError("itemID"))
	}
	if r.Quantity < 1 {
		errd = errors.Join(errd, errs.NewValueIsOutOfRangeError("quantity", r.Quantity, 1, maxItemQuantity))
	}
	return errd
}
