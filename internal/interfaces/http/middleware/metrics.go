package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kyc-chain.backend/pkg/metrics"
)

// MetricsMiddleware records per-route request counts and latencies.
// The route template is used as the path label so path parameters do
// not blow up cardinality.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.RequestCount.WithLabelValues(c.Request.Method, path, status).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}
