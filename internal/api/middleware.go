package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"battler/internal/logging"
)

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		fields := logging.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			logging.Error("request failed", c.Errors.Last(), fields)
			return
		}
		logging.Info("request", fields)
	}
}
