package social

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/svyatk/vitae/internal/platform/errors"
	"github.com/svyatk/vitae/internal/storage"
	"github.com/svyatk/vitae/internal/storage/sqlite"
)

func TestFollowIsIdempotent(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedUsers(t, store, "alice", "bob")
	graph := NewGraph(store)

	for range 3 {
		if err := graph.Follow(context.Background(), "alice", "bob"); err != nil {
			t.Fatalf("follow: %v", err)
		}
	}

	following, err := graph.IsFollowing(context.Background(), "alice", "bob")
	if err != nil {
		t.Fatalf("is following: %v", err)
	}
	if !following {
		t.Fatal("expected alice to follow bob")
	}
	followers, _, err := graph.Counts(context.Background(), "bob")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if followers != 1 {
		t.Fatalf("bob followers = %d, want 1", followers)
	}
}

func TestUnfollowIsIdempotent(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedUsers(t, store, "alice", "bob")
	graph := NewGraph(store)

	if err := graph.Follow(context.Background(), "alice", "bob"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	for range 2 {
		if err := graph.Unfollow(context.Background(), "alice", "bob"); err != nil {
			t.Fatalf("unfollow: %v", err)
		}
	}

	following, err := graph.IsFollowing(context.Background(), "alice", "bob")
	if err != nil {
		t.Fatalf("is following: %v", err)
	}
	if following {
		t.Fatal("expected edge removed")
	}
}

func TestFollowRejectsSelf(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedUsers(t, store, "alice")
	graph := NewGraph(store)

	err := graph.Follow(context.Background(), "alice", "alice")
	if apperrors.CodeOf(err) != apperrors.CodeFollowSelf {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeFollowSelf)
	}
}

func TestFollowedPostsReturnsExactUnion(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedUsers(t, store, "viewer", "a", "b", "stranger")
	graph := NewGraph(store)
	feed := NewFeed(store, DefaultPageSize)

	if err := graph.Follow(context.Background(), "viewer", "a"); err != nil {
		t.Fatalf("follow a: %v", err)
	}
	if err := graph.Follow(context.Background(), "viewer", "b"); err != nil {
		t.Fatalf("follow b: %v", err)
	}

	base := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	mustPost(t, store, "viewer", "own post", base)
	mustPost(t, store, "a", "post by a", base.Add(time.Minute))
	mustPost(t, store, "b", "post by b", base.Add(2*time.Minute))
	mustPost(t, store, "stranger", "unrelated", base.Add(3*time.Minute))

	page, err := feed.FollowedPosts(context.Background(), "viewer", 1)
	if err != nil {
		t.Fatalf("followed posts: %v", err)
	}
	wantBodies := []string{"post by b", "post by a", "own post"}
	if len(page.Posts) != len(wantBodies) {
		t.Fatalf("posts = %d, want %d", len(page.Posts), len(wantBodies))
	}
	for i, want := range wantBodies {
		if page.Posts[i].Body != want {
			t.Fatalf("posts[%d].Body = %q, want %q", i, page.Posts[i].Body, want)
		}
	}
}

func TestFollowedPostsDeduplicatesOwnPosts(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedUsers(t, store, "viewer")
	feed := NewFeed(store, DefaultPageSize)

	// A raw self edge can exist in the store; the composer must still
	// return each own post exactly once.
	now := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	if err := store.PutFollow(context.Background(), "viewer", "viewer", now); err != nil {
		t.Fatalf("put follow: %v", err)
	}
	mustPost(t, store, "viewer", "only once", now)

	page, err := feed.FollowedPosts(context.Background(), "viewer", 1)
	if err != nil {
		t.Fatalf("followed posts: %v", err)
	}
	if len(page.Posts) != 1 {
		t.Fatalf("posts = %d, want 1", len(page.Posts))
	}
	if page.Total != 1 {
		t.Fatalf("total = %d, want 1", page.Total)
	}
}

func TestTimelineOrderingIsStableAcrossCalls(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedUsers(t, store, "alice")
	feed := NewFeed(store, DefaultPageSize)

	same := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	for range 4 {
		mustPost(t, store, "alice", "tied", same)
	}

	first, err := feed.GlobalFeed(context.Background(), 1)
	if err != nil {
		t.Fatalf("global feed: %v", err)
	}
	for range 5 {
		again, err := feed.GlobalFeed(context.Background(), 1)
		if err != nil {
			t.Fatalf("global feed: %v", err)
		}
		for i := range first.Posts {
			if again.Posts[i].ID != first.Posts[i].ID {
				t.Fatalf("ordering changed at %d: %d vs %d", i, again.Posts[i].ID, first.Posts[i].ID)
			}
		}
	}
	if first.Posts[0].ID <= first.Posts[1].ID {
		t.Fatalf("ties must order by id descending, got %d then %d", first.Posts[0].ID, first.Posts[1].ID)
	}
}

func TestFollowUnfollowRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedUsers(t, store, "alice", "bob")
	graph := NewGraph(store)
	feed := NewFeed(store, DefaultPageSize)

	if err := graph.Follow(context.Background(), "alice", "bob"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	t1 := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	mustPost(t, store, "bob", "hello", t1)
	mustPost(t, store, "alice", "hi", t1.Add(time.Minute))

	page, err := feed.FollowedPosts(context.Background(), "alice", 1)
	if err != nil {
		t.Fatalf("followed posts: %v", err)
	}
	wantBodies := []string{"hi", "hello"}
	if len(page.Posts) != len(wantBodies) {
		t.Fatalf("posts = %d, want %d", len(page.Posts), len(wantBodies))
	}
	for i, want := range wantBodies {
		if page.Posts[i].Body != want {
			t.Fatalf("posts[%d].Body = %q, want %q", i, page.Posts[i].Body, want)
		}
	}

	if err := graph.Unfollow(context.Background(), "alice", "bob"); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	page, err = feed.FollowedPosts(context.Background(), "alice", 1)
	if err != nil {
		t.Fatalf("followed posts after unfollow: %v", err)
	}
	if len(page.Posts) != 1 || page.Posts[0].Body != "hi" {
		t.Fatalf("after unfollow posts = %+v, want only %q", page.Posts, "hi")
	}
}

func TestFeedReflectsCurrentStateNotSnapshot(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedUsers(t, store, "alice", "bob")
	graph := NewGraph(store)
	feed := NewFeed(store, DefaultPageSize)

	now := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	mustPost(t, store, "bob", "early", now)

	page, err := feed.FollowedPosts(context.Background(), "alice", 1)
	if err != nil {
		t.Fatalf("followed posts: %v", err)
	}
	if len(page.Posts) != 0 {
		t.Fatalf("posts = %d, want 0 before follow", len(page.Posts))
	}

	if err := graph.Follow(context.Background(), "alice", "bob"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	page, err = feed.FollowedPosts(context.Background(), "alice", 1)
	if err != nil {
		t.Fatalf("followed posts: %v", err)
	}
	if len(page.Posts) != 1 {
		t.Fatalf("posts = %d, want 1 after follow", len(page.Posts))
	}
}

func TestPaginationFlags(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedUsers(t, store, "alice")
	feed := NewFeed(store, 2)

	base := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	for i := range 5 {
		mustPost(t, store, "alice", "post", base.Add(time.Duration(i)*time.Minute))
	}

	tests := []struct {
		page      int
		wantLen   int
		wantPrev  bool
		wantNext  bool
		wantTotal int
	}{
		{page: 1, wantLen: 2, wantPrev: false, wantNext: true, wantTotal: 5},
		{page: 2, wantLen: 2, wantPrev: true, wantNext: true, wantTotal: 5},
		{page: 3, wantLen: 1, wantPrev: true, wantNext: false, wantTotal: 5},
		{page: 4, wantLen: 0, wantPrev: true, wantNext: false, wantTotal: 5},
	}
	for _, tc := range tests {
		page, err := feed.GlobalFeed(context.Background(), tc.page)
		if err != nil {
			t.Fatalf("global feed page %d: %v", tc.page, err)
		}
		if len(page.Posts) != tc.wantLen {
			t.Fatalf("page %d length = %d, want %d", tc.page, len(page.Posts), tc.wantLen)
		}
		if page.HasPrev != tc.wantPrev || page.HasNext != tc.wantNext {
			t.Fatalf("page %d flags = prev %t next %t, want prev %t next %t",
				tc.page, page.HasPrev, page.HasNext, tc.wantPrev, tc.wantNext)
		}
		if page.Total != tc.wantTotal {
			t.Fatalf("page %d total = %d, want %d", tc.page, page.Total, tc.wantTotal)
		}
	}
}

func TestCreatePostValidatesBody(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedUsers(t, store, "alice")
	feed := NewFeed(store, DefaultPageSize)

	_, err := feed.CreatePost(context.Background(), "alice", "   ")
	if apperrors.CodeOf(err) != apperrors.CodePostEmptyBody {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodePostEmptyBody)
	}

	long := make([]rune, 501)
	for i := range long {
		long[i] = 'ж'
	}
	_, err = feed.CreatePost(context.Background(), "alice", string(long))
	if apperrors.CodeOf(err) != apperrors.CodePostBodyTooLong {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodePostBodyTooLong)
	}

	post, err := feed.CreatePost(context.Background(), "alice", "  hello world  ")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.Body != "hello world" {
		t.Fatalf("body = %q, want trimmed %q", post.Body, "hello world")
	}
}

func seedUsers(t *testing.T, store *sqlite.Store, ids ...string) {
	t.Helper()

	now := time.Date(2026, time.August, 10, 8, 0, 0, 0, time.UTC)
	for _, userID := range ids {
		if err := store.CreateUser(context.Background(), storage.User{
			ID:           userID,
			Username:     userID,
			Email:        userID + "@example.com",
			PasswordHash: "hash",
			LastSeenAt:   now,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			t.Fatalf("seed user %s: %v", userID, err)
		}
	}
}

func mustPost(t *testing.T, store *sqlite.Store, authorID, body string, at time.Time) storage.Post {
	t.Helper()

	post, err := store.CreatePost(context.Background(), authorID, body, at)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func openTempStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "social.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
