package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/svyatk/vitae/internal/platform/errors"
	"github.com/svyatk/vitae/internal/platform/id"
	"github.com/svyatk/vitae/internal/storage"
)

const (
	minPasswordLength = 8
	maxBioLength      = 140
)

// Service manages account lifecycle against the user store.
type Service struct {
	users      storage.UserStore
	now        func() time.Time
	bcryptCost int
}

// NewService constructs an identity service.
func NewService(users storage.UserStore) *Service {
	return &Service{
		users:      users,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		bcryptCost: bcrypt.DefaultCost,
	}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}

// Register validates input, hashes the credential, and creates the account.
func (s *Service) Register(ctx context.Context, input RegisterInput) (storage.User, error) {
	username, err := CanonicalizeUsername(input.Username)
	if err != nil {
		return storage.User{}, err
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return storage.User{}, err
	}
	if utf8.RuneCountInString(input.Password) < minPasswordLength {
		return storage.User{}, apperrors.New(apperrors.CodeUserWeakPassword,
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if input.Password != input.PasswordConfirm {
		return storage.User{}, apperrors.New(apperrors.CodeUserPasswordMismatch, "passwords do not match")
	}

	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return storage.User{}, apperrors.New(apperrors.CodeUserUsernameTaken, "username is already taken")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return storage.User{}, fmt.Errorf("check username: %w", err)
	}
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return storage.User{}, apperrors.New(apperrors.CodeUserEmailTaken, "email is already registered")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return storage.User{}, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return storage.User{}, fmt.Errorf("hash password: %w", err)
	}

	userID, err := id.NewID()
	if err != nil {
		return storage.User{}, fmt.Errorf("generate user id: %w", err)
	}
	now := s.now()
	user := storage.User{
		ID:           userID,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		LastSeenAt:   now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return storage.User{}, apperrors.Wrap(apperrors.CodeUserUsernameTaken, "username or email is already taken", err)
		}
		return storage.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies a username and password pair. Failures never reveal
// which field was wrong.
func (s *Service) Authenticate(ctx context.Context, username, password string) (storage.User, error) {
	canonical, err := CanonicalizeUsername(username)
	if err != nil {
		return storage.User{}, apperrors.New(apperrors.CodeUserBadCredentials, "invalid username or password")
	}
	user, err := s.users.GetUserByUsername(ctx, canonical)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.User{}, apperrors.New(apperrors.CodeUserBadCredentials, "invalid username or password")
		}
		return storage.User{}, fmt.Errorf("get user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return storage.User{}, apperrors.New(apperrors.CodeUserBadCredentials, "invalid username or password")
	}
	return user, nil
}

// User returns one account by id.
func (s *Service) User(ctx context.Context, userID string) (storage.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.User{}, apperrors.Wrap(apperrors.CodeNotFound, "user not found", err)
		}
		return storage.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UserByUsername returns one account by username.
func (s *Service) UserByUsername(ctx context.Context, username string) (storage.User, error) {
	canonical, err := CanonicalizeUsername(username)
	if err != nil {
		return storage.User{}, apperrors.New(apperrors.CodeNotFound, "user not found")
	}
	user, err := s.users.GetUserByUsername(ctx, canonical)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.User{}, apperrors.Wrap(apperrors.CodeNotFound, "user not found", err)
		}
		return storage.User{}, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the username and bio of an existing account.
func (s *Service) UpdateProfile(ctx context.Context, userID, username, bio string) (storage.User, error) {
	canonical, err := CanonicalizeUsername(username)
	if err != nil {
		return storage.User{}, err
	}
	bio = strings.TrimSpace(bio)
	if utf8.RuneCountInString(bio) > maxBioLength {
		return storage.User{}, apperrors.New(apperrors.CodeUserBioTooLong,
			fmt.Sprintf("bio must be at most %d characters", maxBioLength))
	}

	user, err := s.User(ctx, userID)
	if err != nil {
		return storage.User{}, err
	}
	if canonical != user.Username {
		if _, err := s.users.GetUserByUsername(ctx, canonical); err == nil {
			return storage.User{}, apperrors.New(apperrors.CodeUserUsernameTaken, "username is already taken")
		} else if !errors.Is(err, storage.ErrNotFound) {
			return storage.User{}, fmt.Errorf("check username: %w", err)
		}
	}

	user.Username = canonical
	user.Bio = bio
	user.UpdatedAt = s.now()
	if err := s.users.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return storage.User{}, apperrors.Wrap(apperrors.CodeUserUsernameTaken, "username is already taken", err)
		}
		if errors.Is(err, storage.ErrNotFound) {
			return storage.User{}, apperrors.Wrap(apperrors.CodeNotFound, "user not found", err)
		}
		return storage.User{}, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// TouchLastSeen records activity for an authenticated request.
func (s *Service) TouchLastSeen(ctx context.Context, userID string) error {
	if err := s.users.TouchLastSeen(ctx, userID, s.now()); err != nil {
		return fmt.Errorf("touch last seen: %w", err)
	}
	return nil
}

func normalizeEmail(input string) (string, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return "", apperrors.New(apperrors.CodeUserInvalidEmail, "email is required")
	}
	addr, err := mail.ParseAddress(input)
	if err != nil || addr.Address != input {
		return "", apperrors.New(apperrors.CodeUserInvalidEmail, "email is invalid")
	}
	return input, nil
}
