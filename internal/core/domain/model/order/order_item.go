package order

import (
	"errors"

	"orderservice/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem")

// OrderItem is a quantity of a specific catalog item attached to one order.
// Its existence is governed by the owning Order; it is created or replaced
// during item reconciliation and never mutated individually outside of it.
//
// For reconciliation purposes the identity of an OrderItem is the referenced
// catalog item identifier, not the surrogate row id.
type OrderItem struct {
	// id is the surrogate persistence identifier (0 until persisted)
	id int64

	// orderID is the back-reference to the owning order (0 until bound)
	orderID int64

	// itemID references the catalog item and serves as the reconciliation identity
	itemID int64

	// quantity is the ordered amount (must be positive)
	quantity int

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewOrderItem creates a new, not yet persisted OrderItem for the given
// catalog item. Quantity must be positive.
func NewOrderItem(itemID int64, quantity int) (*OrderItem, error) {
	item := &OrderItem{isConstructed: true}

	if err := errors.Join(
		item.setItemID(itemID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs an OrderItem from persisted state.
func RestoreOrderItem(id, orderID, itemID int64, quantity int) (*OrderItem, error) {
	item, err := NewOrderItem(itemID, quantity)
	if err != nil {
		return nil, err
	}

	item.id = id
	item.orderID = orderID
	return item, nil
}

// Validate ensures the OrderItem was created through a constructor.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the surrogate persistence identifier, 0 for unsaved items.
func (i *OrderItem) ID() int64 {
	return i.id
}

// OrderID returns the identifier of the owning order, 0 while unbound.
func (i *OrderItem) OrderID() int64 {
	return i.orderID
}

// ItemID returns the referenced catalog item identifier.
func (i *OrderItem) ItemID() int64 {
	return i.itemID
}

// Quantity returns the ordered amount.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// ChangeQuantity updates the ordered amount in place, preserving the item's
// identity and back-reference. Used by reconciliation for retained items.
func (i *OrderItem) ChangeQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

// bindTo attaches the item to its owning order.
func (i *OrderItem) bindTo(orderID int64) {
	i.orderID = orderID
}

func (i *OrderItem) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsRequiredError("itemID")
	}
	i.itemID = itemID
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	if quantity > maxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

// maxItemQuantity bounds a single line item.
const maxItemQuantity = 10000
