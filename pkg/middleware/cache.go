package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CacheControl marks responses under the given prefixes as uncacheable
// unless the handler sets its own Cache-Control.
func CacheControl(prefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hasAnyPrefix(c.Request.URL.Path, prefixes) {
			c.Header("Cache-Control", "no-store")
		}
		c.Next()
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
