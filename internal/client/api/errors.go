package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means no response was received from the backend.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means the backend rejected the credential.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a backend-reported failure: a non-success status together with
// the human-readable text extracted from the {detail} or {message} body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Is lets errors.Is(err, ErrUnauthorized) match credential rejections.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}
