// internal/server/handlers.go
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"activities-api/internal/common/logger"
	"activities-api/internal/common/metrics"
	"activities-api/pkg/registry"

	apierrors "activities-api/internal/common/errors"
)

// Handler serves the activity endpoints against an injected registry.
type Handler struct {
	registry *registry.Registry
	logger   logger.Logger
	errors   *apierrors.HTTPHandler
}

func NewHandler(reg *registry.Registry, log logger.Logger) *Handler {
	return &Handler{
		registry: reg,
		logger:   log.WithFields(map[string]interface{}{"component": "handler"}),
		errors:   apierrors.NewHTTPHandler(log),
	}
}

// ListActivities returns the full name -> record mapping.
func (h *Handler) ListActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.List())
}

// Signup adds the email query parameter to the named activity. The activity
// name arrives percent-decoded in the path parameter.
func (h *Handler) Signup(c *gin.Context) {
	name := c.Param("name")
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "email query parameter is required"})
		return
	}

	message, err := h.registry.Signup(name, email)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	h.logger.Info("participant signed up", map[string]interface{}{
		"activity": name,
		"email":    email,
	})
	metrics.ActivitySignupsTotal.WithLabelValues(name).Inc()
	h.updateParticipantGauge(name)

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Unregister removes the email query parameter from the named activity.
func (h *Handler) Unregister(c *gin.Context) {
	name := c.Param("name")
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "email query parameter is required"})
		return
	}

	message, err := h.registry.Unregister(name, email)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	h.logger.Info("participant unregistered", map[string]interface{}{
		"activity": name,
		"email":    email,
	})
	metrics.ActivityUnregistersTotal.WithLabelValues(name).Inc()
	h.updateParticipantGauge(name)

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *Handler) updateParticipantGauge(name string) {
	if count, ok := h.registry.ParticipantCount(name); ok {
		metrics.ActivityParticipants.WithLabelValues(name).Set(float64(count))
	}
}
