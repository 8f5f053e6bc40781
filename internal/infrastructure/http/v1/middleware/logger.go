package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"storekeep/pkg/logger"
)

// Logger middleware logs HTTP requests with timing and status.
// Probe and scrape paths log at debug level.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		l := log.WithContext(c.Request.Context())
		write := l.Infow
		if route := c.FullPath(); route == "/metrics" || route == "/health/live" || route == "/health/ready" {
			write = l.Debugw
		}

		write("http request",
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"error", c.Errors.ByType(gin.ErrorTypePrivate).String(),
		)
	}
}
