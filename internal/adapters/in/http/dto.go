package http

import (
	"time"

	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"
)

const dateLayout = "2006-01-02"

// ErrorResponse is the wire shape of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one submitted order line.
type OrderItemRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// UpdateOrderRequest is the body of PUT /orders/{id}. The item list fully
// replaces the order's current lines.
type UpdateOrderRequest struct {
	Status string             `json:"status"`
	Items  []OrderItemRequest `json:"items"`
}

// OrderReply is the wire projection of an order.
type OrderReply struct {
	ID           int64            `json:"id"`
	UserID       int64            `json:"userId"`
	Status       string           `json:"status"`
	CreationDate string           `json:"creationDate"`
	Items        []OrderItemReply `json:"items"`
	User         *UserReply       `json:"user,omitempty"`
}

// OrderItemReply is one persisted order line.
type OrderItemReply struct {
	ID       int64 `json:"id"`
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// UserReply is the wire projection of a remotely resolved owner.
type UserReply struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Surname   string      `json:"surname"`
	Email     string      `json:"email"`
	BirthDate string      `json:"birthDate"`
	Cards     []CardReply `json:"cards"`
}

// CardReply is one payment card of an owner projection.
type CardReply struct {
	ID             int64  `json:"id"`
	Number         string `json:"number"`
	Holder         string `json:"holder"`
	ExpirationDate string `json:"expirationDate"`
	UserID         int64  `json:"userId"`
}

// PageReply is the wire envelope of paged listings.
type PageReply[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
}

func toItemRequests(items []OrderItemRequest) []order.ItemRequest {
	requests := make([]order.ItemRequest, 0, len(items))
	for _, it := range items {
		requests = append(requests, order.ItemRequest{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	return requests
}

func toOrderReply(response queries.OrderResponse) OrderReply {
	items := make([]OrderItemReply, 0, len(response.Items))
	for _, it := range response.Items {
		items = append(items, OrderItemReply{ID: it.ID, ItemID: it.ItemID, Quantity: it.Quantity})
	}

	return OrderReply{
		ID:           response.ID,
		UserID:       response.UserID,
		Status:       string(response.Status),
		CreationDate: response.CreationDate.Format(dateLayout),
		Items:        items,
		User:         toUserReply(response.User),
	}
}

func toUserReply(u *queries.UserResponse) *UserReply {
	if u == nil {
		return nil
	}

	cards := make([]CardReply, 0, len(u.Cards))
	for _, c := range u.Cards {
		cards = append(cards, CardReply{
			ID:             c.ID,
			Number:         c.Number,
			Holder:         c.Holder,
			ExpirationDate: formatDate(c.ExpirationDate),
			UserID:         c.UserID,
		})
	}

	return &UserReply{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		Email:     u.Email,
		BirthDate: formatDate(u.BirthDate),
		Cards:     cards,
	}
}

func toPageReply(page ports.Page[queries.OrderResponse]) PageReply[OrderReply] {
	content := make([]OrderReply, 0, len(page.Items))
	for _, item := range page.Items {
		content = append(content, toOrderReply(item))
	}

	return PageReply[OrderReply]{
		Content:       content,
		TotalElements: page.Total,
		Page:          page.PageNumber,
		Size:          page.PageSize,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
