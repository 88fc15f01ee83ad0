package ports

import (
	"errors"

	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"
)

// ErrCredentialsAreNotConstructed is returned when a Credentials value was not
// created via NewCredentials.
var ErrCredentialsAreNotConstructed = errors.New("Credentials must be created via NewCredentials")

// Credentials carries the identity of the authenticated caller through a
// single request: the caller's email and the bearer token presented to us,
// which is forwarded on authenticated calls to the remote user service.
//
// Credentials are passed explicitly into every lifecycle operation instead of
// being read from ambient global state, which keeps operations independently
// testable and free of hidden coupling.
type Credentials struct {
	email       string
	bearerToken string

	guard guard.ConstructorGuard
}

// NewCredentials creates request-scoped caller credentials.
// Both the email and the bearer token are required.
func NewCredentials(email, bearerToken string) (Credentials, error) {
	if email == "" {
		return Credentials{}, errs.NewValueIsRequiredError("email")
	}
	if bearerToken == "" {
		return Credentials{}, errs.NewValueIsRequiredError("bearerToken")
	}

	return Credentials{
		email:       email,
		bearerToken: bearerToken,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the credentials were created through the constructor.
func (c Credentials) Validate() error {
	return c.guard.Validate(ErrCredentialsAreNotConstructed)
}

// Email returns the authenticated caller's email.
func (c Credentials) Email() string {
	return c.email
}

// BearerToken returns the caller's bearer token for outbound authentication.
func (c Credentials) BearerToken() string {
	return c.bearerToken
}
