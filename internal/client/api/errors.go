package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork marks transport-level failures: connection refused, timeouts,
	// bodies that fail to decode. The attempt is abandoned, never retried.
	ErrNetwork = errors.New("network error")

	// ErrNotFound is returned when the backend answers 404 for a user id.
	ErrNotFound = errors.New("user not found")
)

// StatusError is a backend rejection: a non-2xx response whose body carried a
// {"message": ...} envelope. Message may be empty when the body had none; the
// caller is expected to substitute a per-operation fallback.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected request (status %d)", e.Code)
	}
	return fmt.Sprintf("backend rejected request (status %d): %s", e.Code, e.Message)
}

// RejectionMessage extracts the backend-provided message from err, falling
// back to the given generic string for transport failures or empty bodies.
func RejectionMessage(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}
