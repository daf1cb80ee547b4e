// Package identity manages account registration, credentials, and profiles.
package identity

import (
	"regexp"
	"strings"

	apperrors "github.com/svyatk/vitae/internal/platform/errors"
)

var canonicalUsernamePattern = regexp.MustCompile(`^[a-z][a-z0-9._-]{2,31}$`)

// CanonicalizeUsername normalizes a username to lowercase ASCII and
// validates policy.
func CanonicalizeUsername(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", apperrors.New(apperrors.CodeUserEmptyUsername, "username is required")
	}

	var builder strings.Builder
	builder.Grow(len(input))
	for i := 0; i < len(input); i++ {
		ch := input[i]
		if ch > 0x7f {
			return "", apperrors.New(apperrors.CodeUserInvalidUsername, "username must be ASCII")
		}
		if ch >= 'A' && ch <= 'Z' {
			ch = ch - 'A' + 'a'
		}
		builder.WriteByte(ch)
	}

	canonical := builder.String()
	if !canonicalUsernamePattern.MatchString(canonical) {
		return "", apperrors.New(apperrors.CodeUserInvalidUsername, "username does not match required format")
	}
	return canonical, nil
}
