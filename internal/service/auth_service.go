package service

import (
	"log/slog"
	"net/http"
)

// AuthService serves login and logout. Both are no-ops until real
// credentials exist; see auth.HeaderAuthenticator.
type AuthService struct{}

// NewAuthService creates a new AuthService.
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login returns 200 with an empty body.
func (s *AuthService) Login(w http.ResponseWriter, r *http.Request) error {
	slog.Debug("Login request")
	return noContent(w, r)
}

// Logout returns 200 with an empty body.
func (s *AuthService) Logout(w http.ResponseWriter, r *http.Request) error {
	slog.Debug("Logout request")
	return noContent(w, r)
}
