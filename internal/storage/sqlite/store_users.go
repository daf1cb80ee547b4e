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

const userColumns = `id, username, email, password_hash, bio, last_seen_at, created_at, updated_at`

// CreateUser inserts one account record.
func (s *Store) CreateUser(ctx context.Context, u storage.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	userID := strings.TrimSpace(u.ID)
	username := strings.TrimSpace(u.Username)
	email := strings.TrimSpace(u.Email)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	createdAt := u.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := u.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	lastSeenAt := u.LastSeenAt.UTC()
	if lastSeenAt.IsZero() {
		lastSeenAt = createdAt
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO users (id, username, email, password_hash, bio, last_seen_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID,
		username,
		email,
		u.PasswordHash,
		u.Bio,
		toMillis(lastSeenAt),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		if isUniqueViolation(err, "users.") {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUser returns one account by id.
func (s *Store) GetUser(ctx context.Context, userID string) (storage.User, error) {
	return s.getUserWhere(ctx, "id = ?", strings.TrimSpace(userID))
}

// GetUserByUsername returns one account by username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (storage.User, error) {
	return s.getUserWhere(ctx, "username = ?", strings.TrimSpace(username))
}

// GetUserByEmail returns one account by email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (storage.User, error) {
	return s.getUserWhere(ctx, "email = ?", strings.TrimSpace(email))
}

func (s *Store) getUserWhere(ctx context.Context, where string, arg string) (storage.User, error) {
	if err := ctx.Err(); err != nil {
		return storage.User{}, err
	}
	if err := s.ready(); err != nil {
		return storage.User{}, err
	}
	if arg == "" {
		return storage.User{}, storage.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE `+where,
		arg,
	)
	return scanUser(row)
}

// UpdateUser updates the mutable account fields (username, bio).
func (s *Store) UpdateUser(ctx context.Context, u storage.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	userID := strings.TrimSpace(u.ID)
	username := strings.TrimSpace(u.Username)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	if username == "" {
		return fmt.Errorf("username is required")
	}
	updatedAt := u.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE users SET username = ?, bio = ?, updated_at = ? WHERE id = ?`,
		username,
		u.Bio,
		toMillis(updatedAt),
		userID,
	)
	if err != nil {
		if isUniqueViolation(err, "users.username") {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// TouchLastSeen records activity for an authenticated request.
func (s *Store) TouchLastSeen(ctx context.Context, userID string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE users SET last_seen_at = ? WHERE id = ?`,
		toMillis(at.UTC()),
		userID,
	)
	if err != nil {
		return fmt.Errorf("touch last seen: %w", err)
	}
	return nil
}

func scanUser(row *sql.Row) (storage.User, error) {
	var u storage.User
	var lastSeenAt, createdAt, updatedAt int64
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Bio,
		&lastSeenAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.User{}, storage.ErrNotFound
		}
		return storage.User{}, fmt.Errorf("get user: %w", err)
	}
	u.LastSeenAt = fromMillis(lastSeenAt)
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return u, nil
}

var _ storage.UserStore = (*Store)(nil)
