package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/Nour-Ali/NodeBB-nour/pkg/apperrors"
	"github.com/Nour-Ali/NodeBB-nour/pkg/response"
)

// Recovery turns a handler panic into a 500 envelope and logs the stack. The
// panic value is never sent to the client.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			requestID := GetRequestID(c)
			logger.ErrorContext(c.Request.Context(), "panic recovered",
				slog.String("request_id", requestID),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("client_ip", c.ClientIP()),
				slog.String("error", fmt.Sprint(rec)),
				slog.String("stack", string(debug.Stack())),
			)

			if !c.Writer.Written() {
				response.Error(c, http.StatusInternalServerError, "Internal server error", apperrors.ErrInternal)
			}
			c.Abort()
		}()

		c.Next()
	}
}
