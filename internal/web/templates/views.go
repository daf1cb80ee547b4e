// Package templates renders the HTML surface of the site.
package templates

import (
	"golang.org/x/text/message"

	"github.com/svyatk/vitae/internal/storage"
)

const timestampLayout = "02 Jan 2006 15:04"

// NewPostViews maps stored posts to their rendered representation.
func NewPostViews(posts []storage.Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, PostView{
			AuthorUsername: post.AuthorUsername,
			Body:           post.Body,
			CreatedAt:      post.CreatedAt.Format(timestampLayout),
		})
	}
	return views
}

// Localizer exposes translated formatting used by templates.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// NavView provides data for the shared navigation bar.
type NavView struct {
	Authenticated bool
	Username      string
}

// LayoutView provides data for the page shell.
type LayoutView struct {
	Title string
	Lang  string
	Flash string
	Nav   NavView
}

// PostView represents one rendered post.
type PostView struct {
	AuthorUsername string
	Body           string
	CreatedAt      string
}

// PaginationView provides prev/next navigation for a post listing.
type PaginationView struct {
	BasePath string
	Param    string
	Number   int
	HasPrev  bool
	HasNext  bool
}

// TimelineView provides data for the home timeline page.
type TimelineView struct {
	Authenticated bool
	FormError     string
	Body          string
	Posts         []PostView
	Pagination    PaginationView
}

// LoginView provides data for the sign-in form.
type LoginView struct {
	Username  string
	FormError string
	Next      string
}

// RegisterView provides data for the registration form.
type RegisterView struct {
	Username  string
	Email     string
	FormError string
}

// ProfileView provides data for a user profile page.
type ProfileView struct {
	Username       string
	Bio            string
	LastSeen       string
	Followers      int
	Following      int
	IsSelf         bool
	ViewerFollows  bool
	Authenticated  bool
	OwnPosts       []PostView
	OwnPagination  PaginationView
	FeedPosts      []PostView
	FeedPagination PaginationView
}

// EditProfileView provides data for the profile edit form.
type EditProfileView struct {
	Username  string
	Bio       string
	FormError string
}

// ResumeView provides data for the résumé overview page.
type ResumeView struct {
	HasProfile  bool
	Profile     storage.ResumeProfile
	FormError   string
	Experiences []storage.WorkExperience
	Educations  []storage.Education
	Courses     []storage.AdditionalEducation
}

// ResumeShowView provides data for the read-only résumé page.
type ResumeShowView struct {
	Username    string
	HasProfile  bool
	Profile     storage.ResumeProfile
	Experiences []storage.WorkExperience
	Educations  []storage.Education
	Courses     []storage.AdditionalEducation
}

// ExperienceFormView provides data for the work experience form.
type ExperienceFormView struct {
	Entry     storage.WorkExperience
	IsEdit    bool
	FormError string
}

// EducationFormView provides data for the education form.
type EducationFormView struct {
	Entry     storage.Education
	IsEdit    bool
	FormError string
}

// CourseFormView provides data for the additional education form.
type CourseFormView struct {
	Entry     storage.AdditionalEducation
	IsEdit    bool
	FormError string
}
