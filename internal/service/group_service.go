package service

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mmynk/groupsplit/internal/middleware"
	"github.com/mmynk/groupsplit/internal/templates"
)

var errNoUser = errors.New("no authenticated user in request context")

// GroupService serves the group routes. Both handlers expect to run behind
// middleware.RequireUser.
type GroupService struct {
	renderer Renderer
}

// NewGroupService creates a new GroupService rendering with renderer.
func NewGroupService(renderer Renderer) *GroupService {
	return &GroupService{renderer: renderer}
}

// CreateGroup thanks the user. No group is stored.
func (s *GroupService) CreateGroup(w http.ResponseWriter, r *http.Request) error {
	user := middleware.GetUser(r.Context())
	if user == nil {
		return errNoUser
	}

	slog.Debug("Creating new group", "user", user.Name)
	return writeHTML(w, fmt.Sprintf("Thanks, %s", user.Name))
}

// ListGroups renders groups.html for the user.
func (s *GroupService) ListGroups(w http.ResponseWriter, r *http.Request) error {
	user := middleware.GetUser(r.Context())
	if user == nil {
		return errNoUser
	}

	page, err := s.renderer.Render("groups.html", templates.Context{"username": user.Name})
	if err != nil {
		return err
	}
	return writeHTML(w, page)
}
