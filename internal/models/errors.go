package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories. The HTTP layer
// owns the mapping from these to status codes.
var (
	// ErrNotFound indicates the requested user or resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken indicates a registration conflict on username.
	ErrUsernameTaken = errors.New("username taken")
	// ErrAuthenticationFailed covers every login failure. Deliberately a single
	// value so a missing user and a wrong password are indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrInvalidToken indicates a malformed, tampered or expired bearer token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrPastDate indicates an activity dated before the log's last day.
	ErrPastDate = errors.New("date precedes last day in log")
)

// ValidationError reports a structurally invalid activity field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%q %s", e.Field, e.Reason)
}
