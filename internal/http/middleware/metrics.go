package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tourgate/internal/metrics"
)

// Metrics records request counts and latency.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		m.RequestsTotal.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.Observe(time.Since(start).Seconds())
	}
}
