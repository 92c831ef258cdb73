// Package httputil provides shared HTTP response helpers.
package httputil

import "github.com/gin-gonic/gin"

// requestIDKey mirrors middleware.RequestIDKey; importing middleware here would cycle.
const requestIDKey = "request_id"

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// RequestID returns the request ID stored on the context, or "".
func RequestID(c *gin.Context) string {
	if rid, exists := c.Get(requestIDKey); exists {
		if s, ok := rid.(string); ok {
			return s
		}
	}

	return ""
}

// RespondError writes a standardized JSON error response and aborts the request.
func RespondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: RequestID(c),
	})
}
