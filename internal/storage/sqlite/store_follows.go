package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/svyatk/vitae/internal/storage"
)

// PutFollow records a directed follow edge. Re-inserting an existing edge
// is a no-op so the operation stays idempotent.
func (s *Store) PutFollow(ctx context.Context, followerID, followedID string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	followerID = strings.TrimSpace(followerID)
	followedID = strings.TrimSpace(followedID)
	if followerID == "" || followedID == "" {
		return fmt.Errorf("follower and followed ids are required")
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO follows (follower_id, followed_id, created_at) VALUES (?, ?, ?)`,
		followerID,
		followedID,
		toMillis(at.UTC()),
	)
	if err != nil {
		return fmt.Errorf("put follow: %w", err)
	}
	return nil
}

// DeleteFollow removes a follow edge. Deleting a missing edge is a no-op.
func (s *Store) DeleteFollow(ctx context.Context, followerID, followedID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	followerID = strings.TrimSpace(followerID)
	followedID = strings.TrimSpace(followedID)
	if followerID == "" || followedID == "" {
		return fmt.Errorf("follower and followed ids are required")
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM follows WHERE follower_id = ? AND followed_id = ?`,
		followerID,
		followedID,
	)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	return nil
}

// HasFollow reports whether followerID follows followedID.
func (s *Store) HasFollow(ctx context.Context, followerID, followedID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := s.ready(); err != nil {
		return false, err
	}
	var count int
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM follows WHERE follower_id = ? AND followed_id = ?`,
		strings.TrimSpace(followerID),
		strings.TrimSpace(followedID),
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("has follow: %w", err)
	}
	return count > 0, nil
}

// CountFollowers counts users following userID.
func (s *Store) CountFollowers(ctx context.Context, userID string) (int, error) {
	return s.countFollows(ctx, "followed_id", userID)
}

// CountFollowing counts users userID follows.
func (s *Store) CountFollowing(ctx context.Context, userID string) (int, error) {
	return s.countFollows(ctx, "follower_id", userID)
}

func (s *Store) countFollows(ctx context.Context, column, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.ready(); err != nil {
		return 0, err
	}
	var count int
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM follows WHERE `+column+` = ?`,
		strings.TrimSpace(userID),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count follows: %w", err)
	}
	return count, nil
}

var _ storage.FollowStore = (*Store)(nil)
