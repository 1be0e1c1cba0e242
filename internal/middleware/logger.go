package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextRequestID is the gin context key holding the request correlation id.
const ContextRequestID = "request_id"

// RequestID tags every request with a correlation id. A caller-supplied
// X-Request-ID header is echoed back; otherwise a fresh UUID is issued.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Logger writes one access-log line per request, carrying the correlation id
// and the client address alongside method, path, status, and latency.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		log.Printf("http: %s %s -> %d in %s rid=%s ip=%s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start).Round(time.Microsecond),
			c.GetString(ContextRequestID),
			c.ClientIP(),
		)
	}
}

// Recovery converts an unhandled panic into the standard error envelope
// instead of leaking a stack trace to the client.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("http: panic recovered rid=%s: %v", c.GetString(ContextRequestID), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "INTERNAL_ERROR", "message": "internal server error"},
		})
	})
}
