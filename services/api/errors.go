package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSessionExpired is returned when the access token has expired and the
// refresh attempt failed (or no refresh token was held). Callers must clear
// any client-facing session and send the user back to login.
var ErrSessionExpired = errors.New("staff session expired")

// Error is a failure response from the upstream backend.
type Error struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("backend returned %d: %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// newError builds an Error from an upstream failure body, preferring the
// structured messages Django REST framework emits (non_field_errors, detail,
// error) and falling back to a generic message.
func newError(status int, body []byte) *Error {
	apiErr := &Error{StatusCode: status, Message: genericMessage(status)}

	var parsed struct {
		NonFieldErrors []string `json:"non_field_errors"`
		Detail         string   `json:"detail"`
		ErrorMsg       string   `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case len(parsed.NonFieldErrors) > 0:
			apiErr.Message = parsed.NonFieldErrors[0]
		case parsed.Detail != "":
			apiErr.Message = parsed.Detail
		case parsed.ErrorMsg != "":
			apiErr.Message = parsed.ErrorMsg
		}
	}

	// Field-level validation errors ({"pax": ["..."]}) land in Details.
	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err == nil {
		for field, msgs := range fields {
			if field == "non_field_errors" || len(msgs) == 0 {
				continue
			}
			apiErr.Details = fmt.Sprintf("%s: %s", field, msgs[0])
			break
		}
	}
	return apiErr
}

func genericMessage(status int) string {
	switch {
	case status == 404:
		return "Not found"
	case status >= 500:
		return "The reservation system is temporarily unavailable"
	default:
		return "Request failed. Please check details."
	}
}
