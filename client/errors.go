package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError represents a structured error response from the genenet API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	RequestID  string `json:"request_id,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("genenet: %d %s: %s (request_id=%s)", e.StatusCode, e.Code, e.Message, e.RequestID)
	}
	return fmt.Sprintf("genenet: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

func statusOf(err error) int {
	var e *APIError
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// IsNotFound returns true if the error is a 404 not found.
func IsNotFound(err error) bool { return statusOf(err) == 404 }

// IsRateLimited returns true if the error is a 429 rate limit.
func IsRateLimited(err error) bool { return statusOf(err) == 429 }

// IsUpstream returns true when the server could not reach IntAct or togows
// (502, 503 or 504).
func IsUpstream(err error) bool {
	s := statusOf(err)
	return s == 502 || s == 503 || s == 504
}

// parseAPIError attempts to decode a JSON error body; falls back to raw text.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = "unknown"
		apiErr.Message = string(body)
	}
	return apiErr
}
