package commands

import (
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/model/user"
)

// OrderResult is the outcome of a state-changing order operation: the
// persisted aggregate plus the transiently attached owner. The user is
// enrichment only; it never enters order-state integrity.
type OrderResult struct {
	Order *order.Order
	User  *user.User
}
