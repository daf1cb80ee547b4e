package timeline

import (
	"net/http"
	"strconv"

	"github.com/svyatk/vitae/internal/web/module"
	"github.com/svyatk/vitae/internal/web/platform/flash"
	"github.com/svyatk/vitae/internal/web/platform/pagerender"
	"github.com/svyatk/vitae/internal/web/platform/weberror"
	"github.com/svyatk/vitae/internal/web/platform/webi18n"
	"github.com/svyatk/vitae/internal/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderIndex(w, r, "", "")
}

func (h handlers) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	userID := h.deps.ResolveUserID(r)
	if userID == "" {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, h.deps, http.StatusBadRequest)
		return
	}
	body := r.PostFormValue("body")

	if _, err := h.deps.Feed.CreatePost(r.Context(), userID, body); err != nil {
		loc, _ := webi18n.ResolveLocalizer(w, r)
		h.renderIndex(w, r, webi18n.ErrorMessage(loc, err), body)
		return
	}

	loc, _ := webi18n.ResolveLocalizer(w, r)
	flash.Set(w, r, loc.Sprintf("timeline.post_created"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h handlers) renderIndex(w http.ResponseWriter, r *http.Request, formError, body string) {
	pageNumber := parsePage(r)
	page, err := h.deps.Feed.GlobalFeed(r.Context(), pageNumber)
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}

	loc, _ := webi18n.ResolveLocalizer(w, r)
	view := templates.TimelineView{
		Authenticated: h.deps.ResolveUserID(r) != "",
		FormError:     formError,
		Body:          body,
		Posts:         templates.NewPostViews(page.Posts),
		Pagination: templates.PaginationView{
			BasePath: "/",
			Param:    "page",
			Number:   page.Number,
			HasPrev:  page.HasPrev,
			HasNext:  page.HasNext,
		},
	}
	statusCode := http.StatusOK
	if formError != "" {
		statusCode = http.StatusBadRequest
	}
	renderErr := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title:      loc.Sprintf("timeline.title"),
		StatusCode: statusCode,
		Content:    templates.TimelinePage(view, loc),
	})
	if renderErr != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render timeline: %v", renderErr)
	}
}

func parsePage(r *http.Request) int {
	value := r.URL.Query().Get("page")
	if value == "" {
		return 1
	}
	number, err := strconv.Atoi(value)
	if err != nil || number < 1 {
		return 1
	}
	return number
}
