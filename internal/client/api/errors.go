package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: connection refused,
	// timeouts, unparseable responses.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound matches 404 responses.
	ErrNotFound = errors.New("not found")
)

// APIError is a non-2xx response with the server-provided message decoded
// from the {"error": ...} body. Message is surfaced verbatim; callers must
// not rely on structured codes beyond the HTTP status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Is lets APIError values match the status-class sentinels with errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == 401 || e.Status == 403
	case ErrNotFound:
		return e.Status == 404
	}
	return false
}
