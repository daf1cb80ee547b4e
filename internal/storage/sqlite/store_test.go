package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/svyatk/vitae/internal/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestCreateGetUserRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 1, 10, 30, 0, 0, time.UTC)
	input := storage.User{
		ID:           "user-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed-secret",
		Bio:          "software engineer",
		LastSeenAt:   now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := store.CreateUser(context.Background(), input); err != nil {
		t.Fatalf("create user: %v", err)
	}

	got, err := store.GetUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.Username != input.Username {
		t.Fatalf("username = %q, want %q", got.Username, input.Username)
	}
	if got.Email != input.Email {
		t.Fatalf("email = %q, want %q", got.Email, input.Email)
	}
	if got.Bio != input.Bio {
		t.Fatalf("bio = %q, want %q", got.Bio, input.Bio)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, now)
	}

	byName, err := store.GetUserByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("get user by username: %v", err)
	}
	if byName.ID != "user-1" {
		t.Fatalf("id = %q, want %q", byName.ID, "user-1")
	}

	byEmail, err := store.GetUserByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("get user by email: %v", err)
	}
	if byEmail.ID != "user-1" {
		t.Fatalf("id = %q, want %q", byEmail.ID, "user-1")
	}
}

func TestCreateUserReturnsAlreadyExistsOnDuplicateUsername(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 1, 10, 40, 0, 0, time.UTC)
	if err := store.CreateUser(context.Background(), storage.User{
		ID:           "user-1",
		Username:     "bob",
		Email:        "bob@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
	}); err != nil {
		t.Fatalf("create initial user: %v", err)
	}
	err := store.CreateUser(context.Background(), storage.User{
		ID:           "user-2",
		Username:     "bob",
		Email:        "other@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
	})
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate create error = %v, want %v", err, storage.ErrAlreadyExists)
	}
}

func TestGetUserReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.GetUser(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestUpdateUserChangesUsernameAndBio(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 2, 9, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "carol", now)

	if err := store.UpdateUser(context.Background(), storage.User{
		ID:        "user-1",
		Username:  "caroline",
		Bio:       "updated bio",
		UpdatedAt: now.Add(time.Hour),
	}); err != nil {
		t.Fatalf("update user: %v", err)
	}

	got, err := store.GetUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.Username != "caroline" {
		t.Fatalf("username = %q, want %q", got.Username, "caroline")
	}
	if got.Bio != "updated bio" {
		t.Fatalf("bio = %q, want %q", got.Bio, "updated bio")
	}
}

func TestTouchLastSeenUpdatesTimestamp(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 2, 9, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "dave", now)

	later := now.Add(30 * time.Minute)
	if err := store.TouchLastSeen(context.Background(), "user-1", later); err != nil {
		t.Fatalf("touch last seen: %v", err)
	}

	got, err := store.GetUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !got.LastSeenAt.Equal(later) {
		t.Fatalf("last_seen_at = %v, want %v", got.LastSeenAt, later)
	}
}

func TestPutFollowIsIdempotent(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 3, 12, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "alice", now)
	seedUser(t, store, "user-2", "bob", now)

	for range 3 {
		if err := store.PutFollow(context.Background(), "user-1", "user-2", now); err != nil {
			t.Fatalf("put follow: %v", err)
		}
	}

	has, err := store.HasFollow(context.Background(), "user-1", "user-2")
	if err != nil {
		t.Fatalf("has follow: %v", err)
	}
	if !has {
		t.Fatal("expected follow edge")
	}
	followers, err := store.CountFollowers(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("count followers: %v", err)
	}
	if followers != 1 {
		t.Fatalf("followers = %d, want 1", followers)
	}
	following, err := store.CountFollowing(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("count following: %v", err)
	}
	if following != 1 {
		t.Fatalf("following = %d, want 1", following)
	}
}

func TestDeleteFollowIsIdempotent(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 3, 12, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "alice", now)
	seedUser(t, store, "user-2", "bob", now)

	if err := store.PutFollow(context.Background(), "user-1", "user-2", now); err != nil {
		t.Fatalf("put follow: %v", err)
	}
	for range 2 {
		if err := store.DeleteFollow(context.Background(), "user-1", "user-2"); err != nil {
			t.Fatalf("delete follow: %v", err)
		}
	}

	has, err := store.HasFollow(context.Background(), "user-1", "user-2")
	if err != nil {
		t.Fatalf("has follow: %v", err)
	}
	if has {
		t.Fatal("expected follow edge removed")
	}
}

func TestFollowEdgesAreDirected(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 3, 12, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "alice", now)
	seedUser(t, store, "user-2", "bob", now)

	if err := store.PutFollow(context.Background(), "user-1", "user-2", now); err != nil {
		t.Fatalf("put follow: %v", err)
	}
	reverse, err := store.HasFollow(context.Background(), "user-2", "user-1")
	if err != nil {
		t.Fatalf("has follow: %v", err)
	}
	if reverse {
		t.Fatal("reverse edge should not exist")
	}
}

func TestListFeedPostsReturnsOwnAndFollowedNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 4, 8, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "alice", now)
	seedUser(t, store, "user-2", "bob", now)
	seedUser(t, store, "user-3", "carol", now)
	if err := store.PutFollow(context.Background(), "user-1", "user-2", now); err != nil {
		t.Fatalf("put follow: %v", err)
	}

	mustCreatePost(t, store, "user-1", "first from alice", now)
	mustCreatePost(t, store, "user-2", "from bob", now.Add(time.Minute))
	mustCreatePost(t, store, "user-3", "from carol", now.Add(2*time.Minute))
	mustCreatePost(t, store, "user-1", "second from alice", now.Add(3*time.Minute))

	feed, err := store.ListFeedPosts(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("list feed posts: %v", err)
	}
	if len(feed) != 3 {
		t.Fatalf("feed length = %d, want 3", len(feed))
	}
	wantBodies := []string{"second from alice", "from bob", "first from alice"}
	for i, want := range wantBodies {
		if feed[i].Body != want {
			t.Fatalf("feed[%d].Body = %q, want %q", i, feed[i].Body, want)
		}
	}

	count, err := store.CountFeedPosts(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("count feed posts: %v", err)
	}
	if count != 3 {
		t.Fatalf("feed count = %d, want 3", count)
	}
}

func TestListPostsBreaksTimestampTiesByID(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 4, 8, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "alice", now)

	older := mustCreatePost(t, store, "user-1", "older insert", now)
	newer := mustCreatePost(t, store, "user-1", "newer insert", now)
	if newer.ID <= older.ID {
		t.Fatalf("expected monotonically increasing ids, got %d then %d", older.ID, newer.ID)
	}

	posts, err := store.ListPostsByAuthor(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("list posts by author: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("posts length = %d, want 2", len(posts))
	}
	if posts[0].ID != newer.ID {
		t.Fatalf("posts[0].ID = %d, want %d", posts[0].ID, newer.ID)
	}
}

func TestListAllPostsPaginates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 4, 8, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "alice", now)
	for i := range 5 {
		mustCreatePost(t, store, "user-1", "post", now.Add(time.Duration(i)*time.Minute))
	}

	first, err := store.ListAllPosts(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("list all posts: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("first page length = %d, want 2", len(first))
	}
	last, err := store.ListAllPosts(context.Background(), 2, 4)
	if err != nil {
		t.Fatalf("list all posts: %v", err)
	}
	if len(last) != 1 {
		t.Fatalf("last page length = %d, want 1", len(last))
	}
	count, err := store.CountAllPosts(context.Background())
	if err != nil {
		t.Fatalf("count all posts: %v", err)
	}
	if count != 5 {
		t.Fatalf("count = %d, want 5", count)
	}
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 5, 14, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "alice", now)

	session := storage.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	if err := store.PutSession(context.Background(), session); err != nil {
		t.Fatalf("put session: %v", err)
	}

	got, err := store.GetSession(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.UserID != "user-1" {
		t.Fatalf("user_id = %q, want %q", got.UserID, "user-1")
	}
	if !got.ExpiresAt.Equal(session.ExpiresAt) {
		t.Fatalf("expires_at = %v, want %v", got.ExpiresAt, session.ExpiresAt)
	}

	if err := store.DeleteSession(context.Background(), "sess-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := store.GetSession(context.Background(), "sess-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestDeleteExpiredSessionsKeepsLiveOnes(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 5, 14, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "alice", now)

	expired := storage.Session{ID: "sess-old", UserID: "user-1", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}
	live := storage.Session{ID: "sess-new", UserID: "user-1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	if err := store.PutSession(context.Background(), expired); err != nil {
		t.Fatalf("put expired session: %v", err)
	}
	if err := store.PutSession(context.Background(), live); err != nil {
		t.Fatalf("put live session: %v", err)
	}

	if err := store.DeleteExpiredSessions(context.Background(), now); err != nil {
		t.Fatalf("delete expired sessions: %v", err)
	}

	if _, err := store.GetSession(context.Background(), "sess-old"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expired session err = %v, want %v", err, storage.ErrNotFound)
	}
	if _, err := store.GetSession(context.Background(), "sess-new"); err != nil {
		t.Fatalf("live session should survive: %v", err)
	}
}

func TestPutResumeProfileUpserts(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 6, 11, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "alice", now)

	first := storage.ResumeProfile{
		UserID:          "user-1",
		FirstName:       "Alice",
		Surname:         "Ivanova",
		City:            "Moscow",
		DesiredPosition: "Backend Engineer",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := store.PutResumeProfile(context.Background(), first); err != nil {
		t.Fatalf("put resume profile: %v", err)
	}

	second := first
	second.DesiredPosition = "Staff Engineer"
	second.AboutMe = "Ten years of Go"
	second.UpdatedAt = now.Add(time.Hour)
	if err := store.PutResumeProfile(context.Background(), second); err != nil {
		t.Fatalf("upsert resume profile: %v", err)
	}

	got, err := store.GetResumeProfile(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get resume profile: %v", err)
	}
	if got.DesiredPosition != "Staff Engineer" {
		t.Fatalf("desired_position = %q, want %q", got.DesiredPosition, "Staff Engineer")
	}
	if got.AboutMe != "Ten years of Go" {
		t.Fatalf("about_me = %q, want %q", got.AboutMe, "Ten years of Go")
	}
	if got.FirstName != "Alice" {
		t.Fatalf("first_name = %q, want %q", got.FirstName, "Alice")
	}
}

func TestWorkExperienceLifecycleIsOwnerScoped(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 6, 11, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "alice", now)
	seedUser(t, store, "user-2", "bob", now)

	created, err := store.CreateWorkExperience(context.Background(), storage.WorkExperience{
		UserID:       "user-1",
		StartedAt:    "2020-01",
		EndedAt:      "2023-06",
		Organization: "Acme",
		Position:     "Engineer",
		CreatedAt:    now,
	})
	if err != nil {
		t.Fatalf("create work experience: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	if _, err := store.GetWorkExperience(context.Background(), "user-2", created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("cross-owner get err = %v, want %v", err, storage.ErrNotFound)
	}

	created.Position = "Senior Engineer"
	created.UpdatedAt = now.Add(time.Hour)
	if err := store.UpdateWorkExperience(context.Background(), created); err != nil {
		t.Fatalf("update work experience: %v", err)
	}

	crossOwner := created
	crossOwner.UserID = "user-2"
	if err := store.UpdateWorkExperience(context.Background(), crossOwner); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("cross-owner update err = %v, want %v", err, storage.ErrNotFound)
	}

	entries, err := store.ListWorkExperiences(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list work experiences: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries length = %d, want 1", len(entries))
	}
	if entries[0].Position != "Senior Engineer" {
		t.Fatalf("position = %q, want %q", entries[0].Position, "Senior Engineer")
	}
}

func TestEducationLifecycleIsOwnerScoped(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 6, 11, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "alice", now)
	seedUser(t, store, "user-2", "bob", now)

	created, err := store.CreateEducation(context.Background(), storage.Education{
		UserID:         "user-1",
		Level:          "Master",
		Institution:    "MSU",
		Faculty:        "CMC",
		Specialization: "Applied Math",
		CompletionYear: "2018",
		CreatedAt:      now,
	})
	if err != nil {
		t.Fatalf("create education: %v", err)
	}

	if _, err := store.GetEducation(context.Background(), "user-2", created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("cross-owner get err = %v, want %v", err, storage.ErrNotFound)
	}

	created.Institution = "HSE"
	if err := store.UpdateEducation(context.Background(), created); err != nil {
		t.Fatalf("update education: %v", err)
	}
	got, err := store.GetEducation(context.Background(), "user-1", created.ID)
	if err != nil {
		t.Fatalf("get education: %v", err)
	}
	if got.Institution != "HSE" {
		t.Fatalf("institution = %q, want %q", got.Institution, "HSE")
	}
}

func TestAdditionalEducationLifecycleIsOwnerScoped(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.August, 6, 11, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", "alice", now)
	seedUser(t, store, "user-2", "bob", now)

	created, err := store.CreateAdditionalEducation(context.Background(), storage.AdditionalEducation{
		UserID:         "user-1",
		Organization:   "Coursera",
		Specialization: "Distributed Systems",
		CompletionYear: "2024",
		CreatedAt:      now,
	})
	if err != nil {
		t.Fatalf("create additional education: %v", err)
	}

	if _, err := store.GetAdditionalEducation(context.Background(), "user-2", created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("cross-owner get err = %v, want %v", err, storage.ErrNotFound)
	}

	created.Comment = "with honors"
	if err := store.UpdateAdditionalEducation(context.Background(), created); err != nil {
		t.Fatalf("update additional education: %v", err)
	}
	entries, err := store.ListAdditionalEducations(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list additional educations: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries length = %d, want 1", len(entries))
	}
	if entries[0].Comment != "with honors" {
		t.Fatalf("comment = %q, want %q", entries[0].Comment, "with honors")
	}
}

func seedUser(t *testing.T, store *Store, id, username string, now time.Time) {
	t.Helper()

	if err := store.CreateUser(context.Background(), storage.User{
		ID:           id,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		LastSeenAt:   now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
}

func mustCreatePost(t *testing.T, store *Store, authorID, body string, at time.Time) storage.Post {
	t.Helper()

	post, err := store.CreatePost(context.Background(), authorID, body, at)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "vitae.db"))
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
