// Package modules lists the web feature modules and mounts them onto a
// shared ServeMux.
package modules

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/svyatk/vitae/internal/web/module"
	"github.com/svyatk/vitae/internal/web/modules/account"
	"github.com/svyatk/vitae/internal/web/modules/profile"
	"github.com/svyatk/vitae/internal/web/modules/resumeforms"
	"github.com/svyatk/vitae/internal/web/modules/timeline"
)

// Default returns the stable web modules in mount order.
func Default() []module.Module {
	return []module.Module{
		timeline.New(),
		account.New(),
		profile.New(),
		resumeforms.New(),
	}
}

// MountAll mounts every module onto root. Protected routes are wrapped so
// unauthenticated requests are redirected to the sign-in form with the
// original path preserved.
func MountAll(root *http.ServeMux, deps module.Dependencies, features []module.Module) error {
	if deps.ResolveUserID == nil {
		return fmt.Errorf("mount modules: ResolveUserID resolver is required")
	}
	seen := make(map[string]string)

	for _, feature := range features {
		if feature == nil {
			return fmt.Errorf("mount modules: module is nil")
		}
		mount, err := feature.Mount(deps)
		if err != nil {
			return fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		for _, route := range mount.Routes {
			if route.Pattern == "" || route.Handler == nil {
				return fmt.Errorf("mount module %q: route is incomplete", feature.ID())
			}
			if owner, ok := seen[route.Pattern]; ok {
				return fmt.Errorf("mount module %q: pattern %q already mounted by %q", feature.ID(), route.Pattern, owner)
			}
			seen[route.Pattern] = feature.ID()

			handler := http.Handler(route.Handler)
			if route.Protected {
				handler = requireAuth(deps, handler)
			}
			root.Handle(route.Pattern, handler)
		}
	}
	return nil
}

// requireAuth redirects anonymous requests to /login?next=<path>.
func requireAuth(deps module.Dependencies, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if deps.ResolveUserID(r) == "" {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
