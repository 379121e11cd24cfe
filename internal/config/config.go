// Package config reads process settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds settings read once at start. It is not modified afterwards.
type Config struct {
	// Addr is the TCP listen address.
	Addr string

	// TemplateDir is the directory holding the HTML templates.
	TemplateDir string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// MinifyHTML minifies rendered template output.
	MinifyHTML bool

	// ExpensesEnabled registers the expense routes.
	ExpensesEnabled bool
}

// Default returns the settings used when no environment variables are set.
func Default() Config {
	return Config{
		Addr:            "0.0.0.0:3030",
		TemplateDir:     "templates",
		LogLevel:        "info",
		MinifyHTML:      true,
		ExpensesEnabled: false,
	}
}

// Load builds a Config from the environment, falling back to Default.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(lookup func(string) string) (Config, error) {
	def := Default()
	cfg := Config{
		Addr:        getEnv(lookup, "ADDR", def.Addr),
		TemplateDir: getEnv(lookup, "TEMPLATE_DIR", def.TemplateDir),
		LogLevel:    getEnv(lookup, "LOG_LEVEL", def.LogLevel),
	}

	var err error
	if cfg.MinifyHTML, err = getBool(lookup, "MINIFY_HTML", def.MinifyHTML); err != nil {
		return Config{}, err
	}
	if cfg.ExpensesEnabled, err = getBool(lookup, "EXPENSES_ENABLED", def.ExpensesEnabled); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(lookup func(string) string, key, fallback string) string {
	if value := lookup(key); value != "" {
		return value
	}
	return fallback
}

func getBool(lookup func(string) string, key string, fallback bool) (bool, error) {
	value := lookup(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}
