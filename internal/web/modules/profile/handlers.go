package profile

import (
	"net/http"
	"strconv"

	apperrors "github.com/svyatk/vitae/internal/platform/errors"
	"github.com/svyatk/vitae/internal/web/module"
	"github.com/svyatk/vitae/internal/web/platform/flash"
	"github.com/svyatk/vitae/internal/web/platform/pagerender"
	"github.com/svyatk/vitae/internal/web/platform/weberror"
	"github.com/svyatk/vitae/internal/web/platform/webi18n"
	"github.com/svyatk/vitae/internal/web/templates"
)

const lastSeenLayout = "02 Jan 2006 15:04"

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleUserPage(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	user, err := h.deps.Identity.UserByUsername(r.Context(), username)
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}

	viewerID := h.deps.ResolveUserID(r)
	followers, following, err := h.deps.Graph.Counts(r.Context(), user.ID)
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}

	ownPage, err := h.deps.Feed.UserPosts(r.Context(), user.ID, parsePageParam(r, "page"))
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}
	feedPage, err := h.deps.Feed.FollowedPosts(r.Context(), user.ID, parsePageParam(r, "feed_page"))
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}

	view := templates.ProfileView{
		Username:      user.Username,
		Bio:           user.Bio,
		LastSeen:      user.LastSeenAt.Format(lastSeenLayout),
		Followers:     followers,
		Following:     following,
		IsSelf:        viewerID == user.ID,
		Authenticated: viewerID != "",
		OwnPosts:      templates.NewPostViews(ownPage.Posts),
		OwnPagination: templates.PaginationView{
			BasePath: "/user/" + user.Username,
			Param:    "page",
			Number:   ownPage.Number,
			HasPrev:  ownPage.HasPrev,
			HasNext:  ownPage.HasNext,
		},
		FeedPosts: templates.NewPostViews(feedPage.Posts),
		FeedPagination: templates.PaginationView{
			BasePath: "/user/" + user.Username,
			Param:    "feed_page",
			Number:   feedPage.Number,
			HasPrev:  feedPage.HasPrev,
			HasNext:  feedPage.HasNext,
		},
	}
	if viewerID != "" && viewerID != user.ID {
		follows, err := h.deps.Graph.IsFollowing(r.Context(), viewerID, user.ID)
		if err != nil {
			weberror.WriteError(w, r, h.deps, err)
			return
		}
		view.ViewerFollows = follows
	}

	loc, _ := webi18n.ResolveLocalizer(w, r)
	renderErr := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title:   loc.Sprintf("profile.title", user.Username),
		Content: templates.ProfilePage(view, loc),
	})
	if renderErr != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render profile: %v", renderErr)
	}
}

func (h handlers) handleEditForm(w http.ResponseWriter, r *http.Request) {
	user, err := h.deps.Identity.User(r.Context(), h.deps.ResolveUserID(r))
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}
	h.renderEdit(w, r, templates.EditProfileView{Username: user.Username, Bio: user.Bio}, http.StatusOK)
}

func (h handlers) handleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, h.deps, http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	bio := r.PostFormValue("bio")

	updated, err := h.deps.Identity.UpdateProfile(r.Context(), h.deps.ResolveUserID(r), username, bio)
	if err != nil {
		loc, _ := webi18n.ResolveLocalizer(w, r)
		h.renderEdit(w, r, templates.EditProfileView{
			Username:  username,
			Bio:       bio,
			FormError: webi18n.ErrorMessage(loc, err),
		}, http.StatusBadRequest)
		return
	}

	loc, _ := webi18n.ResolveLocalizer(w, r)
	flash.Set(w, r, loc.Sprintf("profile.updated"))
	http.Redirect(w, r, "/user/"+updated.Username, http.StatusSeeOther)
}

func (h handlers) handleFollow(w http.ResponseWriter, r *http.Request) {
	h.mutateGraph(w, r, true)
}

func (h handlers) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	h.mutateGraph(w, r, false)
}

// mutateGraph applies a follow or unfollow with flash-and-redirect UX:
// a missing target or self-follow becomes a message, not an error page.
func (h handlers) mutateGraph(w http.ResponseWriter, r *http.Request, follow bool) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	username := r.PathValue("username")

	target, err := h.deps.Identity.UserByUsername(r.Context(), username)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			flash.Set(w, r, loc.Sprintf("profile.user_not_found"))
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		weberror.WriteError(w, r, h.deps, err)
		return
	}

	viewerID := h.deps.ResolveUserID(r)
	if follow {
		err = h.deps.Graph.Follow(r.Context(), viewerID, target.ID)
	} else {
		err = h.deps.Graph.Unfollow(r.Context(), viewerID, target.ID)
	}
	switch {
	case err == nil:
		if follow {
			flash.Set(w, r, loc.Sprintf("profile.followed", target.Username))
		} else {
			flash.Set(w, r, loc.Sprintf("profile.unfollowed", target.Username))
		}
	case apperrors.CodeOf(err) == apperrors.CodeFollowSelf:
		flash.Set(w, r, loc.Sprintf("profile.self_follow"))
	default:
		weberror.WriteError(w, r, h.deps, err)
		return
	}
	http.Redirect(w, r, "/user/"+target.Username, http.StatusSeeOther)
}

func (h handlers) renderEdit(w http.ResponseWriter, r *http.Request, view templates.EditProfileView, statusCode int) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title:      loc.Sprintf("edit_profile.title"),
		StatusCode: statusCode,
		Content:    templates.EditProfilePage(view, loc),
	})
	if err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render edit profile: %v", err)
	}
}

func parsePageParam(r *http.Request, param string) int {
	value := r.URL.Query().Get(param)
	if value == "" {
		return 1
	}
	number, err := strconv.Atoi(value)
	if err != nil || number < 1 {
		return 1
	}
	return number
}
