package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/Nour-Ali/NodeBB-nour/internal/features/groups"
	"github.com/Nour-Ali/NodeBB-nour/internal/middleware"
	"github.com/Nour-Ali/NodeBB-nour/pkg/config"
	"github.com/Nour-Ali/NodeBB-nour/pkg/health"
	"github.com/Nour-Ali/NodeBB-nour/pkg/store"
)

// Dependencies are the wired components the routes are built from.
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger
	Store  store.Store
	// DB is nil on the redis backend.
	DB     *gorm.DB
	Groups *groups.Handler
}

// Register wires all feature routes onto the engine.
func Register(engine *gin.Engine, deps Dependencies) {
	// Probes live outside /api
	healthHandler := health.NewHandler(map[string]health.Pinger{"store": deps.Store}, deps.DB, deps.Logger)
	engine.GET("/health", healthHandler.Health)
	engine.GET("/ready", healthHandler.Ready)
	engine.GET("/version", healthHandler.Version)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if !deps.Config.IsProduction() {
		engine.GET("/debug/db-stats", healthHandler.DBStats)
	}

	api := engine.Group("/api")

	auth := middleware.NewAuthMiddleware(deps.Config.JWTSecret, deps.Logger)
	groups.RegisterRoutes(api, deps.Groups, auth.Optional())
}
