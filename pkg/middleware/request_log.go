package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"biblioteca-service/pkg/logger"
)

// RequestLogMiddleware logs one line per request with method, path,
// status and latency. SSE streams log on disconnect like any other
// request, just with a long latency.
func RequestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.WithContext(c.Request.Context()).Infof(
			"%s %s status=%d latency=%s client=%s",
			c.Request.Method, path, c.Writer.Status(),
			time.Since(start).Round(time.Millisecond), c.ClientIP(),
		)
	}
}
