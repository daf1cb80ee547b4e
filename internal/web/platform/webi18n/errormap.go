package webi18n

import (
	apperrors "github.com/svyatk/vitae/internal/platform/errors"
)

// ErrorMessage resolves a localized, user-safe message for a domain error.
func ErrorMessage(loc Localizer, err error) string {
	if err == nil {
		return ""
	}
	switch apperrors.CodeOf(err) {
	case apperrors.CodeUserEmptyUsername:
		return loc.Sprintf("form.username_required")
	case apperrors.CodeUserInvalidUsername:
		return loc.Sprintf("form.username_invalid")
	case apperrors.CodeUserInvalidEmail:
		return loc.Sprintf("form.email_invalid")
	case apperrors.CodeUserWeakPassword:
		return loc.Sprintf("form.password_weak")
	case apperrors.CodeUserPasswordMismatch:
		return loc.Sprintf("form.password_mismatch")
	case apperrors.CodeUserUsernameTaken:
		return loc.Sprintf("form.username_taken")
	case apperrors.CodeUserEmailTaken:
		return loc.Sprintf("form.email_taken")
	case apperrors.CodeUserBadCredentials:
		return loc.Sprintf("login.failed")
	case apperrors.CodeUserBioTooLong:
		return loc.Sprintf("form.bio_too_long")
	case apperrors.CodeFollowSelf:
		return loc.Sprintf("profile.self_follow")
	case apperrors.CodePostEmptyBody:
		return loc.Sprintf("form.post_empty")
	case apperrors.CodePostBodyTooLong:
		return loc.Sprintf("form.post_too_long")
	case apperrors.CodeResumeFieldRequired:
		return loc.Sprintf("form.field_required")
	case apperrors.CodeResumeFieldTooLong:
		return loc.Sprintf("form.field_too_long")
	case apperrors.CodeNotFound:
		return loc.Sprintf("error.not_found")
	default:
		return loc.Sprintf("error.internal")
	}
}
