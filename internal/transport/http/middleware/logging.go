package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-api/internal/logger"
)

// RequestLogger writes one structured completion line per request. It runs
// after RequestID so the line carries the request ID.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.FromContext(c.Request.Context()).Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Int("size", c.Writer.Size()).
			Msg("request completed")
	}
}
