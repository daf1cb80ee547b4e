// Package account serves registration, sign-in, and sign-out.
package account

import (
	"net/http"

	"github.com/svyatk/vitae/internal/web/module"
)

// Module provides session lifecycle routes.
type Module struct{}

// New returns an account module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "account" }

// Mount wires account route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := handlers{deps: deps}
	return module.Mount{Routes: []module.Route{
		{Pattern: http.MethodGet + " /login", Handler: h.handleLoginForm},
		{Pattern: http.MethodPost + " /login", Handler: h.handleLogin},
		{Pattern: http.MethodGet + " /register", Handler: h.handleRegisterForm},
		{Pattern: http.MethodPost + " /register", Handler: h.handleRegister},
		{Pattern: http.MethodGet + " /logout", Handler: h.handleLogout},
	}}, nil
}
