package aaa

import (
	"errors"
	"fmt"
)

var (
	// ErrCircuitOpen is returned while the breaker for the AAA server is open.
	ErrCircuitOpen = errors.New("aaa circuit breaker is open")

	// ErrNotConfigured is returned when no AAA host is configured.
	ErrNotConfigured = errors.New("aaa server not configured")
)

// APIError is a non-2xx response from the AAA management API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("aaa api error: %d %s", e.StatusCode, e.Body)
}

// IsServerError reports whether the AAA server failed rather than rejected
// the request.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// ConnectionError is a transport failure, including timeouts.
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("aaa connection error: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// DisconnectRejectedError is a Disconnect-NAK from the NAS.
type DisconnectRejectedError struct {
	Username string
}

func (e *DisconnectRejectedError) Error() string {
	return fmt.Sprintf("nas rejected disconnect for %s", e.Username)
}
