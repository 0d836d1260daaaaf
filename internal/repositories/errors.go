package repositories

import (
	"errors"
	"fmt"
)

// ===== ERROR TAXONOMY =====
//
// Network failures (request never completed) are returned wrapped with %w
// around the transport error. Everything the backend itself rejects maps to
// one of the types below. Every mutating call reports failure through the
// error channel only; no operation swallows a backend failure into a boolean.

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrStudentNotFound = errors.New("student not found")
)

// BackendError is a non-success HTTP status carrying the server-supplied
// message.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// AuthError is a failed credential check with a human-readable reason.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

// IsNotFoundError reports whether err is an id-based lookup miss.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrClassNotFound) || errors.Is(err, ErrStudentNotFound)
}
