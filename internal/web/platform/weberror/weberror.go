// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"

	apperrors "github.com/svyatk/vitae/internal/platform/errors"
	"github.com/svyatk/vitae/internal/web/module"
	"github.com/svyatk/vitae/internal/web/platform/pagerender"
	"github.com/svyatk/vitae/internal/web/platform/webi18n"
	"github.com/svyatk/vitae/internal/web/templates"
)

// WriteStatus renders the shared error page for a status code.
func WriteStatus(w http.ResponseWriter, r *http.Request, deps module.Dependencies, statusCode int) {
	if w == nil {
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, deps, pagerender.Page{
		Title:      http.StatusText(statusCode),
		StatusCode: statusCode,
		Content:    templates.ErrorPage(statusCode, loc),
	})
	if err != nil && deps.Logger != nil {
		deps.Logger.Printf("render error page: %v", err)
	}
}

// WriteError resolves a status from the error chain and renders the shared
// error page. Internal errors are logged, never shown.
func WriteError(w http.ResponseWriter, r *http.Request, deps module.Dependencies, err error) {
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError && deps.Logger != nil {
		deps.Logger.Printf("internal error serving %s %s: %v", r.Method, r.URL.Path, err)
	}
	WriteStatus(w, r, deps, statusCode)
}
