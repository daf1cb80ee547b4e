// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/svyatk/vitae/internal/web/module"
	"github.com/svyatk/vitae/internal/web/platform/flash"
	"github.com/svyatk/vitae/internal/web/platform/webi18n"
	"github.com/svyatk/vitae/internal/web/templates"
)

// Page describes one full-page response.
type Page struct {
	Title      string
	StatusCode int
	Content    templ.Component
}

// WritePage renders a page inside the shared layout with flash and nav
// state resolved from the request.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	layout := templates.LayoutView{
		Title: page.Title,
		Lang:  lang,
	}
	if message, ok := flash.Pop(w, r); ok {
		layout.Flash = message
	}
	if deps.ResolveUserID != nil {
		if userID := deps.ResolveUserID(r); userID != "" && deps.Identity != nil {
			if user, err := deps.Identity.User(r.Context(), userID); err == nil {
				layout.Nav = templates.NavView{Authenticated: true, Username: user.Username}
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	return templates.Layout(layout, loc, page.Content).Render(r.Context(), w)
}
