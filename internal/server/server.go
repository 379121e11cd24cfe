// Package server wires the groupsplit routes into an http.Handler.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/groupsplit/internal/auth"
	"github.com/mmynk/groupsplit/internal/middleware"
	"github.com/mmynk/groupsplit/internal/service"
)

// Options selects optional routes.
type Options struct {
	// ExpensesEnabled registers POST, GET and DELETE /expenses.
	ExpensesEnabled bool
}

// Server routes requests to the services. It holds no mutable state once
// New returns.
type Server struct {
	mux     *http.ServeMux
	metrics *middleware.Metrics
	handler http.Handler
}

// New builds the route table. renderer must already hold index.html and
// groups.html; authn guards the routes that need a user.
func New(renderer service.Renderer, authn auth.Authenticator, opts Options) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		mux:     http.NewServeMux(),
		metrics: middleware.NewMetrics(registry),
	}

	pages := service.NewPageService(renderer)
	groups := service.NewGroupService(renderer)
	sessions := service.NewAuthService()
	requireUser := middleware.RequireUser(authn)

	s.handle("GET /{$}", service.Handle(pages.Index))
	s.handle("POST /groups", requireUser(service.Handle(groups.CreateGroup)))
	s.handle("GET /groups", requireUser(service.Handle(groups.ListGroups)))
	s.handle("POST /login", service.Handle(sessions.Login))
	s.handle("POST /logout", service.Handle(sessions.Logout))

	if opts.ExpensesEnabled {
		expenses := service.NewExpenseService()
		s.handle("POST /expenses", service.Handle(expenses.AddExpense))
		s.handle("GET /expenses", requireUser(service.Handle(expenses.ListExpenses)))
		s.handle("DELETE /expenses", service.Handle(expenses.DeleteExpense))
	}

	s.mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	s.handler = middleware.Logging(s.mux)
	return s
}

func (s *Server) handle(pattern string, h http.Handler) {
	s.mux.Handle(pattern, s.metrics.Instrument(pattern, h))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
