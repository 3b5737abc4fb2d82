package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrSessionInvalid = errors.New("session is invalid or expired")
var ErrResetTokenInvalid = errors.New("password reset token is invalid or expired")
var ErrResourceNotFound = errors.New("resource not found")
var ErrUserNotFound = errors.New("user not found")
var ErrRootImmutable = errors.New("root user roles cannot be changed")

// ValidationError reports a client-side check that failed before any network
// call was made. It is always recoverable and names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FetchError wraps a network failure or non-2xx backend response. Message
// carries the server-supplied detail when present, otherwise a per-operation
// fallback. Fetch errors are surfaced to the caller and never retried
// automatically.
type FetchError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
