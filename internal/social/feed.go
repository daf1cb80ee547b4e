package social

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/svyatk/vitae/internal/platform/errors"
	"github.com/svyatk/vitae/internal/storage"
)

const (
	// DefaultPageSize is the deployment-wide timeline page size.
	DefaultPageSize = 10

	maxPostLength = 500
)

// Feed composes time-ordered post timelines. Every listing reflects the
// post store and follow graph at call time rather than a cached snapshot.
type Feed struct {
	posts    storage.PostStore
	pageSize int
	now      func() time.Time
}

// NewFeed constructs a feed composer. A non-positive pageSize falls back
// to DefaultPageSize.
func NewFeed(posts storage.PostStore, pageSize int) *Feed {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Feed{
		posts:    posts,
		pageSize: pageSize,
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// Page is one slice of an ordered timeline.
type Page struct {
	Posts   []storage.Post
	Number  int
	Size    int
	Total   int
	HasPrev bool
	HasNext bool
}

// CreatePost validates and appends one post for the author.
func (f *Feed) CreatePost(ctx context.Context, authorID, body string) (storage.Post, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return storage.Post{}, apperrors.New(apperrors.CodePostEmptyBody, "post body is required")
	}
	if utf8.RuneCountInString(body) > maxPostLength {
		return storage.Post{}, apperrors.New(apperrors.CodePostBodyTooLong,
			fmt.Sprintf("post must be at most %d characters", maxPostLength))
	}
	post, err := f.posts.CreatePost(ctx, authorID, body, f.now())
	if err != nil {
		return storage.Post{}, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// FollowedPosts returns one page of the viewer's personalized timeline:
// the deduplicated union of the viewer's own posts and posts by followed
// users, newest first.
func (f *Feed) FollowedPosts(ctx context.Context, viewerID string, page int) (Page, error) {
	return f.paginate(ctx, page,
		func(ctx context.Context, limit, offset int) ([]storage.Post, error) {
			return f.posts.ListFeedPosts(ctx, viewerID, limit, offset)
		},
		func(ctx context.Context) (int, error) {
			return f.posts.CountFeedPosts(ctx, viewerID)
		},
	)
}

// GlobalFeed returns one page of every post on the site, newest first.
func (f *Feed) GlobalFeed(ctx context.Context, page int) (Page, error) {
	return f.paginate(ctx, page, f.posts.ListAllPosts, f.posts.CountAllPosts)
}

// UserPosts returns one page of a single author's posts, newest first.
func (f *Feed) UserPosts(ctx context.Context, authorID string, page int) (Page, error) {
	return f.paginate(ctx, page,
		func(ctx context.Context, limit, offset int) ([]storage.Post, error) {
			return f.posts.ListPostsByAuthor(ctx, authorID, limit, offset)
		},
		func(ctx context.Context) (int, error) {
			return f.posts.CountPostsByAuthor(ctx, authorID)
		},
	)
}

func (f *Feed) paginate(
	ctx context.Context,
	page int,
	list func(context.Context, int, int) ([]storage.Post, error),
	count func(context.Context) (int, error),
) (Page, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * f.pageSize

	total, err := count(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("count posts: %w", err)
	}
	posts, err := list(ctx, f.pageSize, offset)
	if err != nil {
		return Page{}, fmt.Errorf("list posts: %w", err)
	}
	return Page{
		Posts:   posts,
		Number:  page,
		Size:    f.pageSize,
		Total:   total,
		HasPrev: page > 1,
		HasNext: offset+len(posts) < total,
	}, nil
}
