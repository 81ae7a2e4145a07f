package shared

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure. The message is deliberately
	// identical for unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken occurs when registering an email that already has an account.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrNoToken occurs when the Authorization header is missing or not a bearer token.
	ErrNoToken = errors.New("no token provided")
	// ErrInvalidToken occurs when token parsing or signature verification fails.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired occurs when a well-formed token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenUserGone occurs when a valid token references a deleted user.
	ErrTokenUserGone = errors.New("user not found")
)

// ValidationError carries per-field messages from request validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
