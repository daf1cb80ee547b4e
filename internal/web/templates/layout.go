package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

func esc(value string) string {
	return html.EscapeString(value)
}

// Layout wraps page content in the shared HTML shell.
func Layout(view LayoutView, loc Localizer, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := view.Lang
		if lang == "" {
			lang = "en"
		}
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s</title></head><body>`,
			esc(lang), esc(view.Title)); err != nil {
			return err
		}
		if err := nav(view.Nav, loc).Render(ctx, w); err != nil {
			return err
		}
		if view.Flash != "" {
			if _, err := fmt.Fprintf(w, `<p class="flash">%s</p>`, esc(view.Flash)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<main>`); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func nav(view NavView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<nav><a href="/">%s</a>`, esc(loc.Sprintf("nav.home"))); err != nil {
			return err
		}
		if view.Authenticated {
			_, err := fmt.Fprintf(w,
				` <a href="/user/%s">%s</a> <a href="/resume">%s</a> <a href="/logout">%s</a></nav>`,
				esc(view.Username),
				esc(loc.Sprintf("nav.profile")),
				esc(loc.Sprintf("nav.resume")),
				esc(loc.Sprintf("nav.logout")))
			return err
		}
		_, err := fmt.Fprintf(w,
			` <a href="/login">%s</a> <a href="/register">%s</a></nav>`,
			esc(loc.Sprintf("nav.login")),
			esc(loc.Sprintf("nav.register")))
		return err
	})
}

// ErrorPage renders a minimal status page.
func ErrorPage(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var key string
		switch {
		case statusCode == 404:
			key = "error.not_found"
		case statusCode == 401:
			key = "error.unauthorized"
		case statusCode >= 500:
			key = "error.internal"
		default:
			key = "error.bad_request"
		}
		_, err := fmt.Fprintf(w, `<h1>%d</h1><p>%s</p>`, statusCode, esc(loc.Sprintf(key)))
		return err
	})
}

func formError(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, `<p class="form-error">%s</p>`, esc(message))
		return err
	})
}

func postList(posts []PostView, emptyText string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(posts) == 0 {
			_, err := fmt.Fprintf(w, `<p class="empty">%s</p>`, esc(emptyText))
			return err
		}
		if _, err := io.WriteString(w, `<ul class="posts">`); err != nil {
			return err
		}
		for _, post := range posts {
			if _, err := fmt.Fprintf(w,
				`<li><a href="/user/%s">%s</a>: <span>%s</span> <time>%s</time></li>`,
				esc(post.AuthorUsername), esc(post.AuthorUsername),
				esc(post.Body), esc(post.CreatedAt)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

func pagination(view PaginationView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if !view.HasPrev && !view.HasNext {
			return nil
		}
		if _, err := io.WriteString(w, `<nav class="pagination">`); err != nil {
			return err
		}
		param := view.Param
		if param == "" {
			param = "page"
		}
		if view.HasPrev {
			if _, err := fmt.Fprintf(w, `<a href="%s?%s=%d">%s</a> `,
				esc(view.BasePath), esc(param), view.Number-1, esc(loc.Sprintf("timeline.newer"))); err != nil {
				return err
			}
		}
		if view.HasNext {
			if _, err := fmt.Fprintf(w, `<a href="%s?%s=%d">%s</a>`,
				esc(view.BasePath), esc(param), view.Number+1, esc(loc.Sprintf("timeline.older"))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</nav>`)
		return err
	})
}
