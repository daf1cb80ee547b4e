// Package module defines the web module registry contracts.
package module

import (
	"log"
	"net/http"

	"github.com/svyatk/vitae/internal/identity"
	"github.com/svyatk/vitae/internal/resume"
	"github.com/svyatk/vitae/internal/social"
	"github.com/svyatk/vitae/internal/web/session"
)

// Dependencies carries the shared collaborators injected into web modules.
type Dependencies struct {
	Identity *identity.Service
	Graph    *social.Graph
	Feed     *social.Feed
	Resume   *resume.Service
	Sessions *session.Manager
	Remember *session.RememberTokens
	Logger   *log.Logger

	// ResolveUserID returns the authenticated user id for a request, or
	// empty when the request carries no valid session.
	ResolveUserID func(*http.Request) string
}

// Route binds one ServeMux pattern (including the method prefix) to a
// handler. Protected routes require a valid session; unauthenticated
// requests are redirected to the sign-in form.
type Route struct {
	Pattern   string
	Handler   http.HandlerFunc
	Protected bool
}

// Mount lists the routes a module contributes to the root mux.
type Mount struct {
	Routes []Route
}

// Module is the contract every web feature module implements.
type Module interface {
	// ID returns a stable module identifier.
	ID() string
	// Mount wires the module's route handlers.
	Mount(Dependencies) (Mount, error)
}
