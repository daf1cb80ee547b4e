package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/svyatk/vitae/internal/platform/errors"
	"github.com/svyatk/vitae/internal/storage"
	"github.com/svyatk/vitae/internal/storage/sqlite"
)

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t)
	created, err := manager.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned session id")
	}

	got, err := manager.Validate(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("validate session: %v", err)
	}
	if got.UserID != "user-1" {
		t.Fatalf("user_id = %q, want %q", got.UserID, "user-1")
	}
	if !got.ExpiresAt.Equal(created.ExpiresAt) {
		t.Fatalf("stored expires_at = %v, want %v", got.ExpiresAt, created.ExpiresAt)
	}

	if err := manager.Destroy(context.Background(), created.ID); err != nil {
		t.Fatalf("destroy session: %v", err)
	}
	_, err = manager.Validate(context.Background(), created.ID)
	if apperrors.CodeOf(err) != apperrors.CodeSessionInvalid {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeSessionInvalid)
	}
}

func TestValidateRemovesExpiredSession(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t)
	created, err := manager.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	manager.now = func() time.Time {
		return created.ExpiresAt.Add(time.Minute)
	}
	_, err = manager.Validate(context.Background(), created.ID)
	if apperrors.CodeOf(err) != apperrors.CodeSessionExpired {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeSessionExpired)
	}

	// The expired record is gone, so a second attempt reports invalid.
	_, err = manager.Validate(context.Background(), created.ID)
	if apperrors.CodeOf(err) != apperrors.CodeSessionInvalid {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeSessionInvalid)
	}
}

func TestRememberTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tokens, err := NewRememberTokens([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("new remember tokens: %v", err)
	}

	token, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("user id = %q, want %q", userID, "user-1")
	}
}

func TestRememberTokenRejectsWrongKeyAndExpiry(t *testing.T) {
	t.Parallel()

	tokens, err := NewRememberTokens([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("new remember tokens: %v", err)
	}
	other, err := NewRememberTokens([]byte("other-key"))
	if err != nil {
		t.Fatalf("new remember tokens: %v", err)
	}

	token, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := other.Verify(token); apperrors.CodeOf(err) != apperrors.CodeSessionInvalid {
		t.Fatalf("wrong key code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeSessionInvalid)
	}

	tokens.now = func() time.Time {
		return time.Now().UTC().Add(tokens.ttl + time.Hour)
	}
	if _, err := tokens.Verify(token); apperrors.CodeOf(err) != apperrors.CodeSessionExpired {
		t.Fatalf("expired code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeSessionExpired)
	}
}

func TestNewRememberTokensRequiresKey(t *testing.T) {
	t.Parallel()

	if _, err := NewRememberTokens(nil); err == nil {
		t.Fatal("expected missing key error")
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	now := time.Date(2026, time.August, 12, 9, 0, 0, 0, time.UTC)
	if err := store.CreateUser(context.Background(), storage.User{
		ID:           "user-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		LastSeenAt:   now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewManager(store)
}
