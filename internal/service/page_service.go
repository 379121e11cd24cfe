package service

import (
	"net/http"

	"github.com/mmynk/groupsplit/internal/templates"
)

// indexUsername is shown on the landing page until sessions exist.
const indexUsername = "Bob"

// PageService serves pages that need no user.
type PageService struct {
	renderer Renderer
}

// NewPageService creates a new PageService rendering with renderer.
func NewPageService(renderer Renderer) *PageService {
	return &PageService{renderer: renderer}
}

// Index renders index.html.
func (s *PageService) Index(w http.ResponseWriter, r *http.Request) error {
	page, err := s.renderer.Render("index.html", templates.Context{"username": indexUsername})
	if err != nil {
		return err
	}
	return writeHTML(w, page)
}
