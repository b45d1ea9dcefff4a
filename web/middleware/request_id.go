package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID assigns each request a uuid, echoes it in the X-Request-ID
// header, and stores a logger carrying it in the gin context so handlers
// log with request correlation.
func RequestID(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header("X-Request-ID", requestID)
		c.Set("requestID", requestID)
		c.Set("logger", logger.With(zap.String("request_id", requestID)))

		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger, falling back to the given
// default when middleware did not run (e.g. in tests).
func LoggerFrom(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if v, ok := c.Get("logger"); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return fallback
}
