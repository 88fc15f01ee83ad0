// Package user provides the read model for users resolved from the remote
// user service. Users are never persisted locally: they are fetched fresh per
// request and attached transiently to an order's display representation.
package user

import "time"

// User is the remote user read model, including payment cards.
// Plain exported fields: this is projection data, not an aggregate,
// and there are no local invariants to protect.
type User struct {
	ID        int64
	Name      string
	Surname   string
	Email     string
	BirthDate time.Time
	Cards     []Card
}

// Card is a payment card attached to a user.
type Card struct {
	ID             int64
	Number         string
	Holder         string
	ExpirationDate time.Time
	UserID         int64
}
