package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"travelsuite.app/api/common/metrics"
)

// Metrics records request counts and latency labelled by route template,
// so path parameters such as tour ids do not explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		metrics.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
