// Package storage defines persistence contracts for site state.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
var ErrAlreadyExists = errors.New("record already exists")

// User stores one registered account.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Bio          string
	LastSeenAt   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Post stores one immutable status update. AuthorUsername is resolved from
// the owning account on reads.
type Post struct {
	ID             int64
	AuthorID       string
	AuthorUsername string
	Body           string
	CreatedAt      time.Time
}

// Session stores one server-side web session record.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ResumeProfile stores the singleton résumé profile section for a user:
// personal details, contacts, desired position, and additional information.
type ResumeProfile struct {
	UserID                 string
	FirstName              string
	Surname                string
	Patronymic             string
	DateOfBirth            string
	Gender                 string
	City                   string
	Phone                  string
	ContactEmail           string
	SocialLink             string
	SocialLinkComment      string
	ExtraSocialLink        string
	ExtraSocialLinkComment string
	DesiredPosition        string
	ProfessionalArea       string
	Salary                 string
	Employment             string
	WorkSchedule           string
	AboutMe                string
	KeySkills              string
	Languages              string
	Citizenship            string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// WorkExperience stores one résumé work history entry.
type WorkExperience struct {
	ID               int64
	UserID           string
	StartedAt        string
	EndedAt          string
	Organization     string
	Region           string
	CompanyField     string
	Position         string
	Responsibilities string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Education stores one résumé education entry.
type Education struct {
	ID             int64
	UserID         string
	Level          string
	Institution    string
	Faculty        string
	Specialization string
	CompletionYear string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AdditionalEducation stores one résumé course or training entry.
type AdditionalEducation struct {
	ID             int64
	UserID         string
	Organization   string
	Specialization string
	CompletionYear string
	Comment        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserStore persists account records.
type UserStore interface {
	CreateUser(ctx context.Context, u User) error
	GetUser(ctx context.Context, userID string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	UpdateUser(ctx context.Context, u User) error
	TouchLastSeen(ctx context.Context, userID string, at time.Time) error
}

// FollowStore persists directed follow edges. Mutations are idempotent:
// inserting an existing edge or deleting a missing one is a no-op.
type FollowStore interface {
	PutFollow(ctx context.Context, followerID, followedID string, at time.Time) error
	DeleteFollow(ctx context.Context, followerID, followedID string) error
	HasFollow(ctx context.Context, followerID, followedID string) (bool, error)
	CountFollowers(ctx context.Context, userID string) (int, error)
	CountFollowing(ctx context.Context, userID string) (int, error)
}

// PostStore persists the append-only post collection. List methods return
// posts ordered by created_at descending, ties broken by id descending.
type PostStore interface {
	CreatePost(ctx context.Context, authorID, body string, at time.Time) (Post, error)
	ListAllPosts(ctx context.Context, limit, offset int) ([]Post, error)
	CountAllPosts(ctx context.Context) (int, error)
	ListPostsByAuthor(ctx context.Context, authorID string, limit, offset int) ([]Post, error)
	CountPostsByAuthor(ctx context.Context, authorID string) (int, error)
	// ListFeedPosts returns the deduplicated union of the viewer's own posts
	// and posts by users the viewer follows.
	ListFeedPosts(ctx context.Context, viewerID string, limit, offset int) ([]Post, error)
	CountFeedPosts(ctx context.Context, viewerID string) (int, error)
}

// SessionStore persists web session records.
type SessionStore interface {
	PutSession(ctx context.Context, s Session) error
	GetSession(ctx context.Context, sessionID string) (Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

// ResumeStore persists résumé sections. Sub-records are owner-scoped: Get,
// Update, and List take the owning user so one user cannot address another
// user's record by id.
type ResumeStore interface {
	PutResumeProfile(ctx context.Context, p ResumeProfile) error
	GetResumeProfile(ctx context.Context, userID string) (ResumeProfile, error)

	CreateWorkExperience(ctx context.Context, w WorkExperience) (WorkExperience, error)
	GetWorkExperience(ctx context.Context, userID string, id int64) (WorkExperience, error)
	UpdateWorkExperience(ctx context.Context, w WorkExperience) error
	ListWorkExperiences(ctx context.Context, userID string) ([]WorkExperience, error)

	CreateEducation(ctx context.Context, e Education) (Education, error)
	GetEducation(ctx context.Context, userID string, id int64) (Education, error)
	UpdateEducation(ctx context.Context, e Education) error
	ListEducations(ctx context.Context, userID string) ([]Education, error)

	CreateAdditionalEducation(ctx context.Context, e AdditionalEducation) (AdditionalEducation, error)
	GetAdditionalEducation(ctx context.Context, userID string, id int64) (AdditionalEducation, error)
	UpdateAdditionalEducation(ctx context.Context, e AdditionalEducation) error
	ListAdditionalEducations(ctx context.Context, userID string) ([]AdditionalEducation, error)
}
