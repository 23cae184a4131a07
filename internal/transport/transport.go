package transport

import (
	"github.com/ds124wfegd/image-transform-service/internal/transport/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func InitRoutes(log *logrus.Logger, handler *TransformHandler, timeoutSeconds, maxBodyLog int) *gin.Engine {

	router := gin.New()

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.Use(gin.Recovery())
	router.Use(middleware.Logger(log, maxBodyLog))
	router.Use(middleware.Timeout(timeoutSeconds))

	router.POST("/transform", handler.Transform)

	// Health check
	router.GET("/health", handler.Health)

	return router
}
