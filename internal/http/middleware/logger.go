package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"tourgate/internal/logger"
)

// AccessLog writes one structured line per request including request_id.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		log.Info("http request",
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", float64(latency.Microseconds())/1000.0,
			"ip", c.ClientIP(),
		)
	}
}
