package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: timeouts, refused
	// connections, cancelled requests.
	ErrUnavailable = errors.New("server unavailable")
)

// TypeInvalidResponse is the error type injected when the server answers
// with markup instead of JSON (usually a misconfigured proxy).
const TypeInvalidResponse = "INVALID_RESPONSE"

// MsgInvalidResponse is the fixed user-facing message for TypeInvalidResponse.
const MsgInvalidResponse = "server returned an invalid response (HTML instead of JSON)"

// Error is the structured error of the API envelope:
//
//	{"success": false, "error": {"type": ..., "message": ..., "code": ..., "details": ...}}
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ErrorMessage extracts the server-reported message from err, falling back
// to the given string for transport and other untyped failures. Stores use
// it to pick the text they publish to views.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
