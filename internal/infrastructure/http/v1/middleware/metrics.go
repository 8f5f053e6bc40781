package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"storekeep/pkg/metrics"
)

// Metrics records request duration by route template, so /product/:sku is one series.
// Unmatched routes are recorded as "unknown".
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
