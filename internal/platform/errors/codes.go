// Package errors provides structured domain errors with HTTP status mapping.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Identity errors
	CodeUserEmptyUsername    Code = "USER_EMPTY_USERNAME"
	CodeUserInvalidUsername  Code = "USER_INVALID_USERNAME"
	CodeUserInvalidEmail     Code = "USER_INVALID_EMAIL"
	CodeUserWeakPassword     Code = "USER_WEAK_PASSWORD"
	CodeUserPasswordMismatch Code = "USER_PASSWORD_MISMATCH"
	CodeUserUsernameTaken    Code = "USER_USERNAME_TAKEN"
	CodeUserEmailTaken       Code = "USER_EMAIL_TAKEN"
	CodeUserBadCredentials   Code = "USER_BAD_CREDENTIALS"
	CodeUserBioTooLong       Code = "USER_BIO_TOO_LONG"

	// Social graph errors
	CodeFollowSelf Code = "FOLLOW_SELF"

	// Post errors
	CodePostEmptyBody   Code = "POST_EMPTY_BODY"
	CodePostBodyTooLong Code = "POST_BODY_TOO_LONG"

	// Résumé errors
	CodeResumeFieldRequired Code = "RESUME_FIELD_REQUIRED"
	CodeResumeFieldTooLong  Code = "RESUME_FIELD_TOO_LONG"

	// Session errors
	CodeSessionExpired Code = "SESSION_EXPIRED"
	CodeSessionInvalid Code = "SESSION_INVALID"

	// Storage errors
	CodeNotFound      Code = "NOT_FOUND"
	CodeAlreadyExists Code = "ALREADY_EXISTS"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeUserEmptyUsername,
		CodeUserInvalidUsername,
		CodeUserInvalidEmail,
		CodeUserWeakPassword,
		CodeUserPasswordMismatch,
		CodeUserUsernameTaken,
		CodeUserEmailTaken,
		CodeUserBioTooLong,
		CodeFollowSelf,
		CodePostEmptyBody,
		CodePostBodyTooLong,
		CodeResumeFieldRequired,
		CodeResumeFieldTooLong:
		return http.StatusBadRequest

	case CodeUserBadCredentials,
		CodeSessionExpired,
		CodeSessionInvalid:
		return http.StatusUnauthorized

	case CodeNotFound:
		return http.StatusNotFound

	case CodeAlreadyExists:
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
