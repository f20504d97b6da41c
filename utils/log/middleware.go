package log

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestID returns the request id set by GinMiddleware, empty when unset.
func RequestID(c *gin.Context) string {
	return c.GetString("request_id")
}

// GinMiddleware logs every request with latency, status and a generated
// request id. The id is echoed in the X-Request-ID header.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		start := time.Now()
		rid := uuid.NewString()
		c.Set("request_id", rid)
		c.Header("X-Request-ID", rid)
		c.Next()
		latency := time.Since(start)
		statusCode := c.Writer.Status()
		clientIP := c.ClientIP()

		entry := New().WithFields(logrus.Fields{
			"code":       statusCode,
			"latency":    latency.Nanoseconds(),
			"ip":         clientIP,
			"method":     c.Request.Method,
			"path":       path,
			"request_id": rid,
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		} else {
			msg := fmt.Sprintf("%s [%s] \"%s\" %d %s", clientIP, c.Request.Method, path, statusCode, latency.String())
			entry.Info(msg)
		}
	}
}
