// Package service implements the HTTP handlers for groupsplit.
package service

import (
	"log/slog"
	"net/http"

	"github.com/mmynk/groupsplit/internal/middleware"
	"github.com/mmynk/groupsplit/internal/templates"
)

// internalErrorBody is the only error detail a client ever sees.
const internalErrorBody = "Something went wrong"

// Renderer renders a named template with a context into HTML.
type Renderer interface {
	Render(name string, ctx templates.Context) (string, error)
}

// HandlerFunc is an HTTP handler that may fail. Any returned error becomes
// a generic 500; the error itself is only logged.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts h to http.Handler.
func Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			slog.Error("Application error",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", middleware.GetRequestID(r.Context()),
				"error", err,
			)
			http.Error(w, internalErrorBody, http.StatusInternalServerError)
		}
	})
}

// writeHTML writes body as a 200 text/html response.
func writeHTML(w http.ResponseWriter, body string) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte(body))
	return err
}

// noContent is the body of every stub handler: 200 with nothing in it.
func noContent(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(http.StatusOK)
	return nil
}
