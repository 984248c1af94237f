package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means no response was received (DNS, refused
	// connection, timeout, cancelled context).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnexpectedResponse means a 2xx response could not be used.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// APIError is a non-2xx response. Message holds the body's "error" field
// and is empty when the server did not supply one.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

// ServerMessage returns the server-supplied error text carried by err, if any.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// IsUnauthorized reports whether err is a 401 response. Callers currently
// treat it like any other server error.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}
