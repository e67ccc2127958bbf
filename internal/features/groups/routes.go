package groups

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up group endpoints under /groups. create runs before
// the create handler, typically the optional auth middleware.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, create ...gin.HandlerFunc) {
	groups := router.Group("/groups")
	{
		groups.GET("", handler.List)
		groups.POST("", append(append([]gin.HandlerFunc{}, create...), handler.Create)...)
		groups.POST("/validate", handler.Validate)
		groups.GET("/slug/:slug", handler.GetBySlug)
		groups.GET("/:name", handler.Get)
		groups.GET("/:name/owners", handler.Owners)
		groups.GET("/:name/members", handler.Members)
	}
}
