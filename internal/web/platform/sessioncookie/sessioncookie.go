// Package sessioncookie centralizes session cookie behavior.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/svyatk/vitae/internal/web/platform/requestmeta"
)

// Name is the canonical session cookie name.
const Name = "vitae_session"

// RememberName is the long-lived remember-me token cookie name.
const RememberName = "vitae_remember"

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	return read(r, Name)
}

// Write sets the session cookie for the current request context.
func Write(w http.ResponseWriter, r *http.Request, sessionID string) {
	write(w, r, Name, sessionID, 0)
}

// Clear expires the session cookie for the current request context.
func Clear(w http.ResponseWriter, r *http.Request) {
	write(w, r, Name, "", -1)
}

// ReadRemember returns the trimmed remember-me token when present.
func ReadRemember(r *http.Request) (string, bool) {
	return read(r, RememberName)
}

// WriteRemember sets the remember-me token cookie with the given lifetime.
func WriteRemember(w http.ResponseWriter, r *http.Request, token string, ttl time.Duration) {
	write(w, r, RememberName, token, int(ttl.Seconds()))
}

// ClearRemember expires the remember-me token cookie.
func ClearRemember(w http.ResponseWriter, r *http.Request) {
	write(w, r, RememberName, "", -1)
}

func read(r *http.Request, name string) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

func write(w http.ResponseWriter, r *http.Request, name, value string, maxAge int) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    strings.TrimSpace(value),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}
