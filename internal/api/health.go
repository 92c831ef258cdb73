// Package api provides the genenet HTTP handlers.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/genenet/internal/db"
	"github.com/persistorai/genenet/internal/domain"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db        domain.HealthChecker
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler. checker is nil when runs are kept in memory.
func NewHealthHandler(checker domain.HealthChecker, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		db:        checker,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the health endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	SchemaVersion int     `json:"schema_version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health. It reports 200 while the process is
// serving; a failing database is reported in the body, not the status.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Database:      "not_configured",
		SchemaVersion: db.SchemaVersion(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	if h.db != nil {
		resp.Database = "connected"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			h.log.WithError(err).Warn("health: database ping failed")
			resp.Database = "disconnected"
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /api/v1/ready. It fails with 503 when a configured
// database is unreachable.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "checks": gin.H{"database": "not_configured"}})

		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.WithError(err).Error("readiness: database check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "checks": gin.H{"database": "error"}})

		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "checks": gin.H{"database": "ok"}})
}
