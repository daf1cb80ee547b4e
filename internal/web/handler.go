package web

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/svyatk/vitae/internal/platform/telemetry/metrics"
	"github.com/svyatk/vitae/internal/web/module"
	"github.com/svyatk/vitae/internal/web/modules"
	"github.com/svyatk/vitae/internal/web/platform/httpx"
	"github.com/svyatk/vitae/internal/web/platform/sessioncookie"
)

// NewHandler composes the full HTTP handler: feature module routes, the
// metrics endpoint, and the shared middleware stack.
func NewHandler(deps module.Dependencies) (http.Handler, error) {
	deps.ResolveUserID = func(r *http.Request) string {
		return httpx.ViewerIDFromContext(r.Context())
	}

	mux := http.NewServeMux()
	if err := modules.MountAll(mux, deps, modules.Default()); err != nil {
		return nil, fmt.Errorf("compose handler: %w", err)
	}
	mux.Handle("GET /metrics", metrics.Handler())

	handler := httpx.Chain(mux,
		httpx.RecoverPanic(deps.Logger),
		httpx.RequestID(),
		httpx.RequestLogger(deps.Logger),
		authenticate(deps),
	)
	handler = metrics.Instrument(handler)
	return otelhttp.NewHandler(handler, "web"), nil
}

// authenticate resolves the viewer for a request and stores the user id in
// the request context. A valid session cookie wins; otherwise a remember-me
// token mints a fresh session and rewrites the session cookie.
func authenticate(deps module.Dependencies) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := resolveViewer(w, r, deps)
			if userID != "" {
				r = r.WithContext(httpx.WithViewerID(r.Context(), userID))
				if err := deps.Identity.TouchLastSeen(r.Context(), userID); err != nil && deps.Logger != nil {
					deps.Logger.Printf("touch last seen for %s: %v", userID, err)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func resolveViewer(w http.ResponseWriter, r *http.Request, deps module.Dependencies) string {
	if sessionID, ok := sessioncookie.Read(r); ok {
		record, err := deps.Sessions.Validate(r.Context(), sessionID)
		if err == nil {
			return record.UserID
		}
		sessioncookie.Clear(w, r)
	}

	if deps.Remember == nil {
		return ""
	}
	token, ok := sessioncookie.ReadRemember(r)
	if !ok {
		return ""
	}
	userID, err := deps.Remember.Verify(token)
	if err != nil {
		sessioncookie.ClearRemember(w, r)
		return ""
	}
	record, err := deps.Sessions.Create(r.Context(), userID)
	if err != nil {
		if deps.Logger != nil {
			deps.Logger.Printf("renew session from remember token: %v", err)
		}
		return ""
	}
	sessioncookie.Write(w, r, record.ID)
	return userID
}
