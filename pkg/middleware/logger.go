package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request: errors at Error, client failures
// at Warn and everything else at Debug.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		attrs := []slog.Attr{
			slog.String("request_id", GetRequestID(c)),
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}

		level := slog.LevelDebug
		msg := "http_request"
		switch {
		case status >= 500:
			level, msg = slog.LevelError, "http_request_error"
		case status >= 400:
			level, msg = slog.LevelWarn, "http_request_warning"
		}

		logger.LogAttrs(c.Request.Context(), level, msg, attrs...)
	}
}
