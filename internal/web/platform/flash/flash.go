// Package flash implements one-shot status messages carried in a cookie.
package flash

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/svyatk/vitae/internal/web/platform/requestmeta"
)

const cookieName = "vitae_flash"

// Set queues a message for the next rendered page.
func Set(w http.ResponseWriter, r *http.Request, message string) {
	message = strings.TrimSpace(message)
	if w == nil || message == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the queued message, if any, and clears it from the client.
func Pop(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie == nil || cookie.Value == "" {
		return "", false
	}
	if w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   requestmeta.IsHTTPS(r),
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
	decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return "", false
	}
	message := strings.TrimSpace(string(decoded))
	if message == "" {
		return "", false
	}
	return message, true
}
