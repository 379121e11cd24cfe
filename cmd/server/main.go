package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/groupsplit/internal/auth"
	"github.com/mmynk/groupsplit/internal/config"
	"github.com/mmynk/groupsplit/internal/server"
	"github.com/mmynk/groupsplit/internal/templates"
	"github.com/mmynk/groupsplit/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup(slog.LevelInfo)
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(logging.ParseLevel(cfg.LogLevel))

	templateDir, err := filepath.Abs(cfg.TemplateDir)
	if err != nil {
		slog.Error("Failed to resolve template path", "error", err)
		os.Exit(1)
	}

	var opts []templates.Option
	if cfg.MinifyHTML {
		opts = append(opts, templates.WithMinify())
	}
	renderer, err := templates.Load(templateDir, opts...)
	if err != nil {
		slog.Error("Failed to load templates", "path", templateDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Templates loaded", "path", templateDir, "templates", renderer.Names())

	srv := server.New(renderer, auth.NewHeaderAuthenticator(), server.Options{
		ExpensesEnabled: cfg.ExpensesEnabled,
	})

	// Wrap with h2c so HTTP/2 works without TLS
	h2cHandler := h2c.NewHandler(srv, &http2.Server{})

	slog.Info("Server starting", "address", cfg.Addr, "expenses_enabled", cfg.ExpensesEnabled)
	if err := http.ListenAndServe(cfg.Addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
