package account

import (
	"net/http"
	"strings"

	"github.com/svyatk/vitae/internal/identity"
	"github.com/svyatk/vitae/internal/web/module"
	"github.com/svyatk/vitae/internal/web/platform/flash"
	"github.com/svyatk/vitae/internal/web/platform/pagerender"
	"github.com/svyatk/vitae/internal/web/platform/sessioncookie"
	"github.com/svyatk/vitae/internal/web/platform/weberror"
	"github.com/svyatk/vitae/internal/web/platform/webi18n"
	"github.com/svyatk/vitae/internal/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if h.deps.ResolveUserID(r) != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderLogin(w, r, templates.LoginView{Next: safeNext(r.URL.Query().Get("next"))}, http.StatusOK)
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, h.deps, http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	next := safeNext(r.PostFormValue("next"))

	user, err := h.deps.Identity.Authenticate(r.Context(), username, password)
	if err != nil {
		loc, _ := webi18n.ResolveLocalizer(w, r)
		h.renderLogin(w, r, templates.LoginView{
			Username:  username,
			Next:      next,
			FormError: loc.Sprintf("login.failed"),
		}, http.StatusUnauthorized)
		return
	}

	session, err := h.deps.Sessions.Create(r.Context(), user.ID)
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}
	sessioncookie.Write(w, r, session.ID)

	if r.PostFormValue("remember_me") != "" && h.deps.Remember != nil {
		token, err := h.deps.Remember.Issue(user.ID)
		if err == nil {
			sessioncookie.WriteRemember(w, r, token, h.deps.Remember.TTL())
		} else if h.deps.Logger != nil {
			h.deps.Logger.Printf("issue remember token: %v", err)
		}
	}

	loc, _ := webi18n.ResolveLocalizer(w, r)
	flash.Set(w, r, loc.Sprintf("login.welcome", user.Username))
	if next == "" {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h handlers) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	if h.deps.ResolveUserID(r) != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderRegister(w, r, templates.RegisterView{}, http.StatusOK)
}

func (h handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, h.deps, http.StatusBadRequest)
		return
	}
	input := identity.RegisterInput{
		Username:        r.PostFormValue("username"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		PasswordConfirm: r.PostFormValue("password_confirm"),
	}

	if _, err := h.deps.Identity.Register(r.Context(), input); err != nil {
		loc, _ := webi18n.ResolveLocalizer(w, r)
		h.renderRegister(w, r, templates.RegisterView{
			Username:  input.Username,
			Email:     input.Email,
			FormError: webi18n.ErrorMessage(loc, err),
		}, http.StatusBadRequest)
		return
	}

	loc, _ := webi18n.ResolveLocalizer(w, r)
	flash.Set(w, r, loc.Sprintf("register.done"))
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sessionID, ok := sessioncookie.Read(r); ok {
		if err := h.deps.Sessions.Destroy(r.Context(), sessionID); err != nil && h.deps.Logger != nil {
			h.deps.Logger.Printf("destroy session: %v", err)
		}
	}
	sessioncookie.Clear(w, r)
	sessioncookie.ClearRemember(w, r)

	loc, _ := webi18n.ResolveLocalizer(w, r)
	flash.Set(w, r, loc.Sprintf("logout.done"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, view templates.LoginView, statusCode int) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title:      loc.Sprintf("login.title"),
		StatusCode: statusCode,
		Content:    templates.LoginPage(view, loc),
	})
	if err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render login: %v", err)
	}
}

func (h handlers) renderRegister(w http.ResponseWriter, r *http.Request, view templates.RegisterView, statusCode int) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title:      loc.Sprintf("register.title"),
		StatusCode: statusCode,
		Content:    templates.RegisterPage(view, loc),
	})
	if err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render register: %v", err)
	}
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	next = strings.TrimSpace(next)
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}
