// Package queries contains read-only operations over orders.
// Query handlers never mutate state; they load, enrich, and project.
package queries

import (
	"time"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/model/user"
)

// OrderResponse is the projection of an order returned by read operations,
// with the owner attached transiently when it could be resolved.
type OrderResponse struct {
	ID           int64
	UserID       int64
	Status       order.Status
	CreationDate time.Time
	Items        []OrderItemResponse
	User         *UserResponse
}

// OrderItemResponse is one line item of an order projection.
type OrderItemResponse struct {
	ID       int64
	ItemID   int64
	Quantity int
}

// UserResponse is the projection of a remotely resolved user.
type UserResponse struct {
	ID        int64
	Name      string
	Surname   string
	Email     string
	BirthDate time.Time
	Cards     []CardResponse
}

// CardResponse is one payment card of a user projection.
type CardResponse struct {
	ID             int64
	Number         string
	Holder         string
	ExpirationDate time.Time
	UserID         int64
}

// NewOrderResponse projects an order aggregate and its optionally resolved
// owner into a response. A nil owner yields an absent User field.
func NewOrderResponse(o *order.Order, owner *user.User) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:       it.ID(),
			ItemID:   it.ItemID(),
			Quantity: it.Quantity(),
		})
	}

	return OrderResponse{
		ID:           o.ID(),
		UserID:       o.UserID(),
		Status:       o.Status(),
		CreationDate: o.CreationDate(),
		Items:        items,
		User:         NewUserResponse(owner),
	}
}

// NewUserResponse projects a remote user; nil in, nil out.
func NewUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}

	cards := make([]CardResponse, 0, len(u.Cards))
	for _, c := range u.Cards {
		cards = append(cards, CardResponse{
			ID:             c.ID,
			Number:         c.Number,
			Holder:         c.Holder,
			ExpirationDate: c.ExpirationDate,
			UserID:         c.UserID,
		})
	}

	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		Email:     u.Email,
		BirthDate: u.BirthDate,
		Cards:     cards,
	}
}
