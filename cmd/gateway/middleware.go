// In file: cmd/gateway/middleware.go
package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dileep-u-k/toolhub/internal/logging"
)

const (
	headerRequestID = "X-Request-ID"
	headerSessionID = "X-Session-ID"
	ctxRequestID    = "request_id"
)

// requestIDMiddleware adds a unique request ID to each request/response.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(headerRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(ctxRequestID, reqID)
		c.Header(headerRequestID, reqID)
		c.Next()
	}
}

// corsMiddleware answers preflight requests and sets CORS headers for
// allowed origins. With no origins configured cross-origin calls are denied.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && isOriginAllowed(origin, allowedOrigins) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, If-None-Match, X-Request-ID, X-Session-ID")
			c.Header("Access-Control-Expose-Headers", "ETag, X-Request-ID")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func isOriginAllowed(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

// loggingMiddleware logs each HTTP request.
func loggingMiddleware(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", c.GetString(ctxRequestID)).
			Str("remote", c.ClientIP()).
			Msg("http request")
	}
}
