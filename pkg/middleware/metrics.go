package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPObserver receives the latency of every served request
type HTTPObserver interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

// MetricsMiddleware reports request latency labeled by route template.
// Unmatched paths are reported as "unmatched" to bound label cardinality.
func MetricsMiddleware(observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
