package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/genenet/internal/domain"
	"github.com/persistorai/genenet/internal/middleware"
	"github.com/persistorai/genenet/internal/models"
	"github.com/persistorai/genenet/internal/report"
)

// RunHandler serves pipeline run endpoints.
type RunHandler struct {
	svc domain.RunService
	log *logrus.Logger
}

// NewRunHandler creates a RunHandler with the given service and logger.
func NewRunHandler(svc domain.RunService, log *logrus.Logger) *RunHandler {
	return &RunHandler{svc: svc, log: log}
}

// List handles GET /api/v1/runs.
func (h *RunHandler) List(c *gin.Context) {
	limit := parseInt(c.DefaultQuery("limit", "50"), 50)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	runs, hasMore, err := h.svc.ListRuns(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, h.log, err, "listing runs")

		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs, "has_more": hasMore})
}

// Create handles POST /api/v1/runs. The pipeline runs synchronously; the
// response is the completed run.
func (h *RunHandler) Create(c *gin.Context) {
	var req models.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	run, err := h.svc.CreateRun(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, err, "creating run")

		return
	}

	c.Set(middleware.RunIDKey, run.ID.String())
	h.log.WithFields(logrus.Fields{
		"action":   "run.create",
		"run_id":   run.ID.String(),
		"genes":    len(run.Genes),
		"networks": len(run.Networks),
	}).Info("audit")

	c.JSON(http.StatusCreated, run)
}

// Get handles GET /api/v1/runs/:id.
func (h *RunHandler) Get(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, run)
}

// Networks handles GET /api/v1/runs/:id/networks.
func (h *RunHandler) Networks(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"networks": run.Networks})
}

// Report handles GET /api/v1/runs/:id/report, rendering the plain-text network report.
func (h *RunHandler) Report(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteNetworks(&buf, run.Networks); err != nil {
		respondServiceError(c, h.log, err, "rendering report")

		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// Delete handles DELETE /api/v1/runs/:id.
func (h *RunHandler) Delete(c *gin.Context) {
	id, ok := h.runID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteRun(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err, "deleting run")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "run.delete", "run_id": id.String()}).Info("audit")

	c.Status(http.StatusNoContent)
}

func (h *RunHandler) runID(c *gin.Context) (uuid.UUID, bool) {
	id, err := parseRunID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return uuid.Nil, false
	}

	c.Set(middleware.RunIDKey, id.String())

	return id, true
}

func (h *RunHandler) loadRun(c *gin.Context) (*models.Run, bool) {
	id, ok := h.runID(c)
	if !ok {
		return nil, false
	}

	run, err := h.svc.GetRun(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, "getting run")

		return nil, false
	}

	return run, true
}
