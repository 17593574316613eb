// internal/common/errors/handler.go
package errors

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPHandler adapts application errors to HTTP responses.
type HTTPHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewHTTPHandler(logger Logger) *HTTPHandler {
	return &HTTPHandler{logger: logger}
}

// Respond normalizes err to an APIError, logs it, and writes the
// {"detail": ...} body with the matching status code.
func (h *HTTPHandler) Respond(c *gin.Context, err error) {
	apiErr := h.normalizeError(err)

	h.logger.Error("request failed", map[string]interface{}{
		"errorCode": string(apiErr.Code),
		"message":   apiErr.Message,
		"details":   apiErr.Details,
		"status":    apiErr.HTTPStatus,
		"path":      c.Request.URL.Path,
	})

	c.JSON(apiErr.HTTPStatus, gin.H{"detail": apiErr.Message})
}

// normalizeError ensures we always have an APIError.
func (h *HTTPHandler) normalizeError(err error) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return &APIError{
		Code:       ErrCodeInternal,
		Message:    "Internal server error",
		Details:    err.Error(),
		HTTPStatus: http.StatusInternalServerError,
		Timestamp:  time.Now().UTC(),
	}
}
