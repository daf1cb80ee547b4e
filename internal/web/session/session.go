// Package session manages server-side web sessions and remember-me tokens.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/svyatk/vitae/internal/platform/errors"
	"github.com/svyatk/vitae/internal/platform/id"
	"github.com/svyatk/vitae/internal/platform/timeouts"
	"github.com/svyatk/vitae/internal/storage"
)

// Manager creates, validates, and destroys web sessions.
type Manager struct {
	sessions storage.SessionStore
	ttl      time.Duration
	now      func() time.Time
}

// NewManager constructs a session manager with the default session TTL.
func NewManager(sessions storage.SessionStore) *Manager {
	return &Manager{
		sessions: sessions,
		ttl:      timeouts.Session,
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// Create opens a new session for the user.
func (m *Manager) Create(ctx context.Context, userID string) (storage.Session, error) {
	sessionID, err := id.NewID()
	if err != nil {
		return storage.Session{}, fmt.Errorf("generate session id: %w", err)
	}
	now := m.now()
	session := storage.Session{
		ID:        sessionID,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.sessions.PutSession(ctx, session); err != nil {
		return storage.Session{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Validate resolves a session id to a live session. Expired sessions are
// removed and reported as expired.
func (m *Manager) Validate(ctx context.Context, sessionID string) (storage.Session, error) {
	session, err := m.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Session{}, apperrors.Wrap(apperrors.CodeSessionInvalid, "session not found", err)
		}
		return storage.Session{}, fmt.Errorf("get session: %w", err)
	}
	if !session.ExpiresAt.After(m.now()) {
		_ = m.sessions.DeleteSession(ctx, session.ID)
		return storage.Session{}, apperrors.New(apperrors.CodeSessionExpired, "session expired")
	}
	return session, nil
}

// Destroy removes a session. Destroying a missing session is a no-op.
func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	if err := m.sessions.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// PurgeExpired removes all sessions that have already expired.
func (m *Manager) PurgeExpired(ctx context.Context) error {
	if err := m.sessions.DeleteExpiredSessions(ctx, m.now()); err != nil {
		return fmt.Errorf("purge expired sessions: %w", err)
	}
	return nil
}
