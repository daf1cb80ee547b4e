package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/svyatk/vitae/internal/storage"
)

// feedWhere selects the viewer's own posts plus posts by followed users.
const feedWhere = `p.author_id = ? OR p.author_id IN (SELECT followed_id FROM follows WHERE follower_id = ?)`

// CreatePost appends one post and returns it with the assigned id.
func (s *Store) CreatePost(ctx context.Context, authorID, body string, at time.Time) (storage.Post, error) {
	if err := ctx.Err(); err != nil {
		return storage.Post{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Post{}, err
	}
	authorID = strings.TrimSpace(authorID)
	if authorID == "" {
		return storage.Post{}, fmt.Errorf("author id is required")
	}
	if body == "" {
		return storage.Post{}, fmt.Errorf("post body is required")
	}
	createdAt := at.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO posts (author_id, body, created_at) VALUES (?, ?, ?)`,
		authorID,
		body,
		toMillis(createdAt),
	)
	if err != nil {
		return storage.Post{}, fmt.Errorf("create post: %w", err)
	}
	postID, err := result.LastInsertId()
	if err != nil {
		return storage.Post{}, fmt.Errorf("create post: %w", err)
	}
	var username string
	if err := s.sqlDB.QueryRowContext(ctx,
		`SELECT username FROM users WHERE id = ?`, authorID,
	).Scan(&username); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return storage.Post{}, fmt.Errorf("create post: %w", err)
	}
	return storage.Post{
		ID:             postID,
		AuthorID:       authorID,
		AuthorUsername: username,
		Body:           body,
		CreatedAt:      createdAt,
	}, nil
}

// ListAllPosts returns a page of every post on the site, newest first.
func (s *Store) ListAllPosts(ctx context.Context, limit, offset int) ([]storage.Post, error) {
	return s.listPosts(ctx, "", nil, limit, offset)
}

// CountAllPosts counts every post on the site.
func (s *Store) CountAllPosts(ctx context.Context) (int, error) {
	return s.countPosts(ctx, "", nil)
}

// ListPostsByAuthor returns a page of one author's posts, newest first.
func (s *Store) ListPostsByAuthor(ctx context.Context, authorID string, limit, offset int) ([]storage.Post, error) {
	return s.listPosts(ctx, "p.author_id = ?", []any{strings.TrimSpace(authorID)}, limit, offset)
}

// CountPostsByAuthor counts one author's posts.
func (s *Store) CountPostsByAuthor(ctx context.Context, authorID string) (int, error) {
	return s.countPosts(ctx, "p.author_id = ?", []any{strings.TrimSpace(authorID)})
}

// ListFeedPosts returns a page of the viewer's feed: the deduplicated union
// of the viewer's own posts and posts by followed users, newest first.
func (s *Store) ListFeedPosts(ctx context.Context, viewerID string, limit, offset int) ([]storage.Post, error) {
	viewerID = strings.TrimSpace(viewerID)
	return s.listPosts(ctx, feedWhere, []any{viewerID, viewerID}, limit, offset)
}

// CountFeedPosts counts the viewer's feed posts.
func (s *Store) CountFeedPosts(ctx context.Context, viewerID string) (int, error) {
	viewerID = strings.TrimSpace(viewerID)
	return s.countPosts(ctx, feedWhere, []any{viewerID, viewerID})
}

func (s *Store) listPosts(ctx context.Context, where string, args []any, limit, offset int) ([]storage.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT p.id, p.author_id, u.username, p.body, p.created_at
		FROM posts p JOIN users u ON u.id = p.author_id`
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY p.created_at DESC, p.id DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var posts []storage.Post
	for rows.Next() {
		var p storage.Post
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.AuthorUsername, &p.Body, &createdAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		p.CreatedAt = fromMillis(createdAt)
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *Store) countPosts(ctx context.Context, where string, args []any) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.ready(); err != nil {
		return 0, err
	}
	query := `SELECT COUNT(*) FROM posts p`
	if where != "" {
		query += ` WHERE ` + where
	}
	var count int
	err := s.sqlDB.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

var _ storage.PostStore = (*Store)(nil)
