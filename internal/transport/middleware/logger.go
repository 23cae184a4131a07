package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDKey = "request_id"

// Logger instruments every request with an id and writes the method, URL,
// raw body, duration and outcome status to the injected logger. Bodies are
// logged at debug level and truncated beyond maxBodyLog bytes so the
// append-only log stays usable.
func Logger(log *logrus.Logger, maxBodyLog int) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.New().String()
		c.Set(RequestIDKey, requestID)

		log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"url":        c.Request.URL.String(),
		}).Info("Incoming request")

		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err == nil {
				c.Request.Body = io.NopCloser(bytes.NewReader(body))
				log.WithFields(logrus.Fields{
					"request_id": requestID,
					"body":       truncate(body, maxBodyLog),
				}).Debug("Request body")
			}
		}

		c.Next()

		duration := time.Since(start)

		entry := log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   duration,
			"client_ip":  c.ClientIP(),
		})

		if c.Writer.Status() >= 400 {
			entry.Error("Request failed")
		} else {
			entry.Info("Request processed")
		}
	}
}

func truncate(body []byte, max int) string {
	if max > 0 && len(body) > max {
		return string(body[:max]) + "...(truncated)"
	}
	return string(body)
}
