// Package item provides the catalog entry referenced by order items.
// Catalog entries are owned by another part of the system; the order
// workflow only ever reads them.
package item

import (
	"errors"

	"orderservice/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem")

// Item is a product available for ordering: identifier, display name, price.
// Read-only from the order workflow's perspective.
type Item struct {
	id            int64
	name          string
	price         float64
	isConstructed bool
}

// NewItem creates a catalog entry. Used by the persistence adapter when
// restoring rows, so all fields are validated.
func NewItem(id int64, name string, price float64) (*Item, error) {
	i := &Item{isConstructed: true}

	if err := errors.Join(
		i.setID(id),
		i.setName(name),
		i.setPrice(price),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// Validate ensures the Item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the catalog identifier.
func (i *Item) ID() int64 {
	return i.id
}

// Name returns the display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the unit price.
func (i *Item) Price() float64 {
	return i.price
}

func (i *Item) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	i.price = price
	return nil
}
