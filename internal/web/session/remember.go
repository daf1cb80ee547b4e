package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/svyatk/vitae/internal/platform/errors"
	"github.com/svyatk/vitae/internal/platform/timeouts"
)

const rememberIssuer = "vitae"

// RememberTokens issues and verifies signed remember-me tokens so a
// returning browser can reopen a session without credentials.
type RememberTokens struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewRememberTokens constructs a token codec. The key must be non-empty.
func NewRememberTokens(key []byte) (*RememberTokens, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("remember token key is required")
	}
	return &RememberTokens{
		key: key,
		ttl: timeouts.RememberMe,
		now: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}, nil
}

// TTL returns the token lifetime.
func (t *RememberTokens) TTL() time.Duration {
	return t.ttl
}

// Issue signs a remember-me token for the user.
func (t *RememberTokens) Issue(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}
	now := t.now()
	claims := jwt.RegisteredClaims{
		Issuer:    rememberIssuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("sign remember token: %w", err)
	}
	return signed, nil
}

// Verify parses a remember-me token and returns the user id it names.
func (t *RememberTokens) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return t.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(rememberIssuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.Wrap(apperrors.CodeSessionExpired, "remember token expired", err)
		}
		return "", apperrors.Wrap(apperrors.CodeSessionInvalid, "remember token invalid", err)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || strings.TrimSpace(claims.Subject) == "" {
		return "", apperrors.New(apperrors.CodeSessionInvalid, "remember token has no subject")
	}
	return claims.Subject, nil
}
