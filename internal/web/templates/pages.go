package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// TimelinePage renders the home timeline with the post form.
func TimelinePage(view TimelineView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(loc.Sprintf("timeline.title"))); err != nil {
			return err
		}
		if view.Authenticated {
			if err := formError(view.FormError).Render(ctx, w); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w,
				`<form method="post" action="/"><textarea name="body" placeholder="%s">%s</textarea>`+
					`<button type="submit">%s</button></form>`,
				esc(loc.Sprintf("timeline.post_placeholder")), esc(view.Body),
				esc(loc.Sprintf("timeline.submit"))); err != nil {
				return err
			}
		}
		if err := postList(view.Posts, loc.Sprintf("timeline.empty")).Render(ctx, w); err != nil {
			return err
		}
		return pagination(view.Pagination, loc).Render(ctx, w)
	})
}

// LoginPage renders the sign-in form.
func LoginPage(view LoginView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(loc.Sprintf("login.title"))); err != nil {
			return err
		}
		if err := formError(view.FormError).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="/login">`+
				`<input type="hidden" name="next" value="%s">`+
				`<label>%s<input type="text" name="username" value="%s" required></label>`+
				`<label>%s<input type="password" name="password" required></label>`+
				`<label><input type="checkbox" name="remember_me" value="1">%s</label>`+
				`<button type="submit">%s</button></form>`,
			esc(view.Next),
			esc(loc.Sprintf("login.username")), esc(view.Username),
			esc(loc.Sprintf("login.password")),
			esc(loc.Sprintf("login.remember")),
			esc(loc.Sprintf("login.submit")))
		return err
	})
}

// RegisterPage renders the registration form.
func RegisterPage(view RegisterView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(loc.Sprintf("register.title"))); err != nil {
			return err
		}
		if err := formError(view.FormError).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="/register">`+
				`<label>%s<input type="text" name="username" value="%s" required></label>`+
				`<label>%s<input type="email" name="email" value="%s" required></label>`+
				`<label>%s<input type="password" name="password" required></label>`+
				`<label>%s<input type="password" name="password_confirm" required></label>`+
				`<button type="submit">%s</button></form>`,
			esc(loc.Sprintf("login.username")), esc(view.Username),
			esc(loc.Sprintf("register.email")), esc(view.Email),
			esc(loc.Sprintf("login.password")),
			esc(loc.Sprintf("register.password_confirm")),
			esc(loc.Sprintf("register.submit")))
		return err
	})
}

// ProfilePage renders a user's profile with posts and personal feed.
func ProfilePage(view ProfileView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(loc.Sprintf("profile.title", view.Username))); err != nil {
			return err
		}
		if view.Bio != "" {
			if _, err := fmt.Fprintf(w, `<p class="bio">%s</p>`, esc(view.Bio)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<p>%s · %s · %s</p>`,
			esc(loc.Sprintf("profile.followers", view.Followers)),
			esc(loc.Sprintf("profile.following", view.Following)),
			esc(loc.Sprintf("profile.last_seen", view.LastSeen))); err != nil {
			return err
		}
		if view.Authenticated {
			if _, err := fmt.Fprintf(w, `<p><a href="/user/%s/resume">%s</a></p>`,
				esc(view.Username), esc(loc.Sprintf("profile.view_resume"))); err != nil {
				return err
			}
		}
		switch {
		case view.IsSelf:
			if _, err := fmt.Fprintf(w, `<p><a href="/edit_profile">%s</a></p>`,
				esc(loc.Sprintf("profile.edit"))); err != nil {
				return err
			}
		case view.Authenticated && view.ViewerFollows:
			if _, err := fmt.Fprintf(w, `<p><a href="/unfollow/%s">%s</a></p>`,
				esc(view.Username), esc(loc.Sprintf("profile.unfollow"))); err != nil {
				return err
			}
		case view.Authenticated:
			if _, err := fmt.Fprintf(w, `<p><a href="/follow/%s">%s</a></p>`,
				esc(view.Username), esc(loc.Sprintf("profile.follow"))); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `<h2>%s</h2>`, esc(loc.Sprintf("profile.own_posts"))); err != nil {
			return err
		}
		if err := postList(view.OwnPosts, loc.Sprintf("timeline.empty")).Render(ctx, w); err != nil {
			return err
		}
		if err := pagination(view.OwnPagination, loc).Render(ctx, w); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<h2>%s</h2>`, esc(loc.Sprintf("profile.feed"))); err != nil {
			return err
		}
		if err := postList(view.FeedPosts, loc.Sprintf("timeline.empty")).Render(ctx, w); err != nil {
			return err
		}
		return pagination(view.FeedPagination, loc).Render(ctx, w)
	})
}

// EditProfilePage renders the profile edit form.
func EditProfilePage(view EditProfileView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(loc.Sprintf("edit_profile.title"))); err != nil {
			return err
		}
		if err := formError(view.FormError).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="/edit_profile">`+
				`<label>%s<input type="text" name="username" value="%s" required></label>`+
				`<label>%s<textarea name="bio">%s</textarea></label>`+
				`<button type="submit">%s</button></form>`,
			esc(loc.Sprintf("login.username")), esc(view.Username),
			esc(loc.Sprintf("edit_profile.bio")), esc(view.Bio),
			esc(loc.Sprintf("edit_profile.submit")))
		return err
	})
}
