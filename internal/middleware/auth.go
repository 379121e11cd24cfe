package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/groupsplit/internal/auth"
	"github.com/mmynk/groupsplit/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserKey is the context key for storing the authenticated user.
	UserKey contextKey = "user"
	// RequestIDKey is the context key for storing the request ID.
	RequestIDKey contextKey = "request_id"
)

// LoggedOutRedirect is where unauthenticated requests are sent.
const LoggedOutRedirect = "/"

// GetUser extracts the authenticated user from the context.
// Returns nil if the request did not pass through RequireUser.
func GetUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserKey).(*models.User)
	return user
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// RequireUser returns a middleware that runs authn before the handler.
// Requests without credentials are sent to LoggedOutRedirect with a
// temporary redirect; the handler never runs for them.
func RequireUser(authn auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authn.Authenticate(r)
			if errors.Is(err, auth.ErrLoggedOut) {
				http.Redirect(w, r, LoggedOutRedirect, http.StatusTemporaryRedirect)
				return
			}
			if err != nil {
				slog.Error("Authentication error",
					"path", r.URL.Path,
					"request_id", GetRequestID(r.Context()),
					"error", err,
				)
				http.Error(w, "Something went wrong", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
