package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sms-api/internal/service"
)

const unmatchedRoute = "unmatched"

// Metrics records latency and status for every request. Requests that match
// no route share one label so unknown paths cannot inflate cardinality.
func Metrics(metrics *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
