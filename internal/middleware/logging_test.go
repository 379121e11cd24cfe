package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogging_RequestID(t *testing.T) {
	var seen string
	handler := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if seen == "" {
			t.Fatal("expected request ID in context")
		}
		if got := rec.Header().Get(RequestIDHeader); got != seen {
			t.Errorf("header: expected '%s', got '%s'", seen, got)
		}
		if rec.Code != http.StatusAccepted {
			t.Errorf("status: expected 202, got %d", rec.Code)
		}
	})

	t.Run("reuses client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if seen != "abc-123" {
			t.Errorf("context: expected 'abc-123', got '%s'", seen)
		}
		if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("header: expected 'abc-123', got '%s'", got)
		}
	})
}

func TestStatusRecorder(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	rec.WriteHeader(http.StatusTemporaryRedirect)

	if rec.status != http.StatusTemporaryRedirect {
		t.Errorf("expected 307, got %d", rec.status)
	}
	if _, ok := rec.Unwrap().(*httptest.ResponseRecorder); !ok {
		t.Errorf("Unwrap returned %T", rec.Unwrap())
	}
}
