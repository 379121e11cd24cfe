// Package templates loads HTML templates from a directory and renders them
// by file name.
package templates

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrNoTemplates      = errors.New("no templates found")
)

// Context is the set of variables passed to a template.
type Context map[string]string

// Renderer holds a parsed template set. It is read-only after Load and safe
// for concurrent use.
type Renderer struct {
	set      *template.Template
	minifier *minify.M
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMinify minifies rendered output as text/html.
func WithMinify() Option {
	return func(r *Renderer) {
		m := minify.New()
		m.AddFunc("text/html", minhtml.Minify)
		r.minifier = m
	}
}

// Load parses every *.html file in dir. Templates are looked up by base
// file name, e.g. "index.html".
func Load(dir string, opts ...Option) (*Renderer, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template path is not a directory: %s", dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTemplates, dir)
	}

	set, err := template.New("").Option("missingkey=error").ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := &Renderer{set: set}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render executes the named template with ctx and returns the HTML.
func (r *Renderer) Render(name string, ctx Context) (string, error) {
	tmpl := r.set.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]string(ctx)); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}

	if r.minifier == nil {
		return buf.String(), nil
	}

	out, err := r.minifier.String("text/html", buf.String())
	if err != nil {
		return "", fmt.Errorf("failed to minify %s: %w", name, err)
	}
	return out, nil
}

// Names returns the names of the loaded templates.
func (r *Renderer) Names() []string {
	var names []string
	for _, t := range r.set.Templates() {
		if t.Name() != "" {
			names = append(names, t.Name())
		}
	}
	return names
}
