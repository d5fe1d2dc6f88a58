package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-api/internal/logger"
)

const HeaderRequestID = "X-Request-Id"

// RequestID tags every request with an ID (honoring one supplied by the
// caller), echoes it in the response header, and attaches a child logger
// carrying it to the request context. Everything downstream that logs via
// logger.FromContext picks the ID up automatically.
func RequestID(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(HeaderRequestID, id)

		reqLog := log.With().Str("request_id", id).Logger()
		c.Request = c.Request.WithContext(reqLog.WithContext(c.Request.Context()))
		c.Next()
	}
}
