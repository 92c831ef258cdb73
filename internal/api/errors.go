package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/genenet/internal/httputil"
	"github.com/persistorai/genenet/internal/metrics"
	"github.com/persistorai/genenet/internal/models"
	"github.com/persistorai/genenet/internal/upstream"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest      = "invalid_request"
	ErrCodeValidationError     = "validation_error"
	ErrCodeNotFound            = "not_found"
	ErrCodeUpstreamError       = "upstream_error"
	ErrCodeUpstreamUnavailable = "upstream_unavailable"
	ErrCodeTimeout             = "timeout"
	ErrCodeInternalError       = "internal_error"
)

// respondError writes a standardized JSON error response, pulling the request
// ID from the Gin context (set by the request ID middleware).
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}

// respondServiceError maps errors returned by the run service to API responses.
func respondServiceError(c *gin.Context, log *logrus.Logger, err error, action string) {
	var statusErr *upstream.StatusError

	switch {
	case errors.Is(err, models.ErrRunNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "run not found")
	case errors.Is(err, models.ErrEmptyGeneList),
		errors.Is(err, models.ErrMissingGene),
		errors.Is(err, models.ErrInvalidQuality):
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
	case errors.Is(err, upstream.ErrCircuitOpen):
		log.WithError(err).Warn(action)
		respondError(c, http.StatusServiceUnavailable, ErrCodeUpstreamUnavailable, "upstream service temporarily unavailable")
	case errors.As(err, &statusErr):
		log.WithError(err).Warn(action)
		respondError(c, http.StatusBadGateway, ErrCodeUpstreamError, statusErr.Error())
	case errors.Is(err, context.DeadlineExceeded):
		log.WithError(err).Warn(action)
		respondError(c, http.StatusGatewayTimeout, ErrCodeTimeout, "upstream request timed out")
	default:
		log.WithError(err).Error(action)
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
