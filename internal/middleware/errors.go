package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/persistorai/genenet/internal/httputil"
	"github.com/persistorai/genenet/internal/metrics"
)

// respondError records the error code and delegates to httputil.RespondError.
func respondError(c *gin.Context, status int, errCode, message string) {
	metrics.ErrorsTotal.WithLabelValues(errCode).Inc()
	httputil.RespondError(c, status, errCode, message)
}
