// Package social maintains the follow graph and composes timelines.
package social

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/svyatk/vitae/internal/platform/errors"
	"github.com/svyatk/vitae/internal/storage"
)

// Graph maintains the directed follow relationship between users.
type Graph struct {
	follows storage.FollowStore
	now     func() time.Time
}

// NewGraph constructs a follow graph over the given store.
func NewGraph(follows storage.FollowStore) *Graph {
	return &Graph{
		follows: follows,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// Follow inserts the viewer-to-target edge. Following an already followed
// user is a no-op. Self-follow is rejected.
func (g *Graph) Follow(ctx context.Context, viewerID, targetID string) error {
	if viewerID == targetID {
		return apperrors.New(apperrors.CodeFollowSelf, "you cannot follow yourself")
	}
	if err := g.follows.PutFollow(ctx, viewerID, targetID, g.now()); err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	return nil
}

// Unfollow removes the viewer-to-target edge. Unfollowing a user that is
// not followed is a no-op.
func (g *Graph) Unfollow(ctx context.Context, viewerID, targetID string) error {
	if err := g.follows.DeleteFollow(ctx, viewerID, targetID); err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	return nil
}

// IsFollowing reports whether the viewer follows the target.
func (g *Graph) IsFollowing(ctx context.Context, viewerID, targetID string) (bool, error) {
	following, err := g.follows.HasFollow(ctx, viewerID, targetID)
	if err != nil {
		return false, fmt.Errorf("is following: %w", err)
	}
	return following, nil
}

// Counts returns the follower and following counts for a user.
func (g *Graph) Counts(ctx context.Context, userID string) (followers, following int, err error) {
	followers, err = g.follows.CountFollowers(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("count followers: %w", err)
	}
	following, err = g.follows.CountFollowing(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("count following: %w", err)
	}
	return followers, following, nil
}
