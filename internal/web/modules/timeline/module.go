// Package timeline serves the public home feed and post creation.
package timeline

import (
	"net/http"

	"github.com/svyatk/vitae/internal/web/module"
)

// Module provides the home timeline routes.
type Module struct{}

// New returns a timeline module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "timeline" }

// Mount wires timeline route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := handlers{deps: deps}
	return module.Mount{Routes: []module.Route{
		{Pattern: http.MethodGet + " /{$}", Handler: h.handleIndex},
		{Pattern: http.MethodPost + " /{$}", Handler: h.handleCreatePost},
		{Pattern: http.MethodGet + " /index", Handler: h.handleIndex},
		{Pattern: http.MethodPost + " /index", Handler: h.handleCreatePost},
	}}, nil
}
