package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/genenet/internal/domain"
	"github.com/persistorai/genenet/internal/models"
)

// NetworkHandler builds networks from posted interactions without storing anything.
type NetworkHandler struct {
	svc domain.NetworkService
	log *logrus.Logger
}

// NewNetworkHandler creates a NetworkHandler.
func NewNetworkHandler(svc domain.NetworkService, log *logrus.Logger) *NetworkHandler {
	return &NetworkHandler{svc: svc, log: log}
}

// Build handles POST /api/v1/networks.
func (h *NetworkHandler) Build(c *gin.Context) {
	var req models.BuildNetworksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	networks, err := h.svc.BuildNetworks(c.Request.Context(), req.Interactions)
	if err != nil {
		respondServiceError(c, h.log, err, "building networks")

		return
	}

	h.log.WithFields(logrus.Fields{
		"interactions": len(req.Interactions),
		"networks":     len(networks),
	}).Debug("networks built")

	c.JSON(http.StatusOK, gin.H{"networks": networks})
}
