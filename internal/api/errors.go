// ABOUTME: Typed API error carrying the backend status code and detail body
// ABOUTME: Errors surface verbatim to callers; nothing here retries or recovers

package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error is a non-2xx response from the backend. The body is kept
// verbatim so callers can present it to the user unchanged.
type Error struct {
	StatusCode int
	Detail     string
	Body       []byte
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// newError builds an Error from a response body, pulling the backend's
// detail message out when the body is the usual {"detail": ...} shape.
func newError(statusCode int, body []byte) *Error {
	e := &Error{StatusCode: statusCode, Body: body}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil {
			e.Detail = s
		} else {
			// Validation errors carry a structured detail list
			e.Detail = string(payload.Detail)
		}
	}
	return e
}

// IsStatus reports whether err is a backend error with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}
