// Package profile serves user pages, profile editing, and follow actions.
package profile

import (
	"net/http"

	"github.com/svyatk/vitae/internal/web/module"
)

// Module provides user profile and follow graph routes.
type Module struct{}

// New returns a profile module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "profile" }

// Mount wires profile route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := handlers{deps: deps}
	return module.Mount{Routes: []module.Route{
		{Pattern: http.MethodGet + " /user/{username}", Handler: h.handleUserPage},
		{Pattern: http.MethodGet + " /edit_profile", Handler: h.handleEditForm, Protected: true},
		{Pattern: http.MethodPost + " /edit_profile", Handler: h.handleEdit, Protected: true},
		{Pattern: http.MethodGet + " /follow/{username}", Handler: h.handleFollow, Protected: true},
		{Pattern: http.MethodGet + " /unfollow/{username}", Handler: h.handleUnfollow, Protected: true},
	}}, nil
}
