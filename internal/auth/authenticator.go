package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/groupsplit/internal/models"
)

// ErrLoggedOut is returned when a request carries no credentials.
var ErrLoggedOut = errors.New("not logged in")

// Authenticator derives the calling user from an incoming request.
// This abstraction lets the header placeholder be replaced with real
// credential validation without touching the handlers.
type Authenticator interface {
	// Authenticate returns the user for r, or ErrLoggedOut if the request
	// carries no credentials.
	Authenticate(r *http.Request) (*models.User, error)
}

// AuthenticatorFunc adapts a plain function to the Authenticator interface.
type AuthenticatorFunc func(r *http.Request) (*models.User, error)

// Authenticate calls f(r).
func (f AuthenticatorFunc) Authenticate(r *http.Request) (*models.User, error) {
	return f(r)
}

// HeaderAuthenticator treats the raw Authorization header as the user name.
//
// This is a placeholder, not a security mechanism: any value is accepted,
// scheme prefix included, with no token or credential check.
type HeaderAuthenticator struct{}

// NewHeaderAuthenticator returns the placeholder header authenticator.
func NewHeaderAuthenticator() *HeaderAuthenticator {
	return &HeaderAuthenticator{}
}

// Authenticate implements Authenticator.
func (HeaderAuthenticator) Authenticate(r *http.Request) (*models.User, error) {
	values, ok := r.Header[http.CanonicalHeaderKey("Authorization")]
	if !ok || len(values) == 0 {
		return nil, ErrLoggedOut
	}

	slog.Info("Authenticated user", "user", values[0])
	return models.NewUser(values[0]), nil
}
