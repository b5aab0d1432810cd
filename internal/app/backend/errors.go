// internal/app/backend/errors.go
package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx backend response. Detail carries the backend's
// human-readable "detail" message when the response body had one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %d %s", e.StatusCode, e.Detail)
}

// Message returns the text to show the user: the backend's detail
// message when present, otherwise the given fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// StatusOf returns the HTTP status of a backend APIError, or zero and
// false when err is not one (transport failures, decode errors).
func StatusOf(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

func newAPIError(status int, raw []byte) *APIError {
	var body struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(raw, &body)
	if body.Detail == "" {
		body.Detail = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Detail: body.Detail}
}
