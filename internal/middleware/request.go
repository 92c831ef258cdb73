package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDKey is the gin context key for the request ID.
	RequestIDKey = "request_id"

	// RequestIDHeader is the HTTP header used to propagate the request ID.
	RequestIDHeader = "X-Request-ID"

	// RunIDKey is set by handlers that create or read a run so it appears in the request log.
	RunIDKey = "run_id"
)

// RequestID assigns a fresh server-side UUID to every request. A client
// supplied X-Request-ID is kept as "client_request_id" for correlation only.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()

		if clientID := c.GetHeader(RequestIDHeader); clientID != "" {
			if len(clientID) > 128 {
				clientID = clientID[:128]
			}

			c.Set("client_request_id", clientID)
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger writes one structured log line per request after it completes.
// 5xx responses log at Error, 4xx at Warn, everything else at Info.
func Logger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   status,
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}

		for _, key := range []string{RequestIDKey, "client_request_id", RunIDKey} {
			if v, ok := c.Get(key); ok {
				fields[key] = v
			}
		}

		entry := log.WithFields(fields)

		switch {
		case status >= 500:
			entry.Error("request")
		case status >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}
