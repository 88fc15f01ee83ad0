package ports

import (
	"context"

	"orderservice/internal/core/domain/model/user"
)

// UserClient resolves user identity information from the remote user service.
//
// Implementations must tolerate remote unavailability without destabilizing
// the local order workflow: a failing remote call surfaces as
// errs.ServiceUnavailableError carrying the original cause, an empty result
// as errs.ObjectNotFoundError. Raw transport errors never escape.
//
// The core logic must not depend on which transport or concurrency style
// backs these calls; exactly one implementation is selected at composition
// time.
type UserClient interface {
	// GetByEmail resolves a user by email. The call is authenticated with
	// the caller's bearer token. Used to resolve "who is the caller".
	GetByEmail(ctx context.Context, creds Credentials, email string) (*user.User, error)

	// GetByID resolves a user by identifier. Used for point lookups after
	// an update, where the owner is already known.
	GetByID(ctx context.Context, id int64) (*user.User, error)

	// GetByIDs resolves users in bulk for listings, keyed by identifier.
	// An empty id set is rejected as an invalid argument before any remote
	// call is issued. The call is authenticated with the caller's bearer
	// token. Identifiers absent from the result are simply missing from the
	// map; that is not an error.
	GetByIDs(ctx context.Context, creds Credentials, ids []int64) (map[int64]*user.User, error)
}
