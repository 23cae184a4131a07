package transport

import (
	"errors"
	"net/http"

	"github.com/ds124wfegd/image-transform-service/internal/entity"
	"github.com/ds124wfegd/image-transform-service/internal/transport/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *TransformHandler) Transform(c *gin.Context) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		h.respondError(c, &entity.ValidationError{
			Message:       "Request body must be a JSON object.",
			CorrectFormat: entity.FullCorrectFormat(),
		})
		return
	}

	requestID := c.GetString(middleware.RequestIDKey)

	response, err := h.service.Transform(c.Request.Context(), requestID, data)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TransformHandler) Health(c *gin.Context) {
	h.log.Info("Health check endpoint was called")
	c.JSON(http.StatusOK, entity.HealthResponse{Status: "ok"})
}

// respondError is the single place where pipeline errors become HTTP
// responses. Every rejection is logged with the exact payload sent back.
func (h *TransformHandler) respondError(c *gin.Context, err error) {
	status, body := classify(err)

	h.log.WithFields(logrus.Fields{
		"status":   status,
		"response": body,
	}).Error("Returning to user")

	c.JSON(status, body)
}

func classify(err error) (int, gin.H) {
	var (
		vErr     *entity.ValidationError
		imgErr   *entity.BadImageError
		paramErr *entity.BadParameterError
		intErr   *entity.InternalError
	)
	switch {
	case errors.As(err, &vErr):
		return http.StatusUnprocessableEntity, gin.H{
			"error":          vErr.Message,
			"correct_format": vErr.CorrectFormat,
		}
	case errors.As(err, &imgErr):
		return http.StatusBadRequest, gin.H{"detail": imgErr.Message}
	case errors.As(err, &paramErr):
		return http.StatusBadRequest, gin.H{"detail": paramErr.Error()}
	case errors.As(err, &intErr):
		return http.StatusInternalServerError, gin.H{"detail": intErr.Error()}
	default:
		wrapped := &entity.InternalError{Err: err}
		return http.StatusInternalServerError, gin.H{"detail": wrapped.Error()}
	}
}
