package middleware

import (
	"strconv"

	"streamhub/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts requests by method, route template and status.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
