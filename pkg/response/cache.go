package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// SuccessWithCache writes a success envelope that shared caches may serve for
// maxAge seconds and revalidate in the background for as long again.
func SuccessWithCache(c *gin.Context, status int, data interface{}, message string, maxAge int) {
	c.Header("Cache-Control", cacheControl(maxAge))
	Success(c, status, data, message, nil)
}

// SuccessNoCache writes a success envelope nothing may store.
func SuccessNoCache(c *gin.Context, status int, data interface{}, message string) {
	c.Header("Cache-Control", "no-store")
	Success(c, status, data, message, nil)
}

func cacheControl(maxAge int) string {
	if maxAge <= 0 {
		return "no-cache"
	}
	age := strconv.Itoa(maxAge)
	return "public, max-age=" + age + ", stale-while-revalidate=" + age
}
