package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nour-Ali/NodeBB-nour/internal/bootstrap"
	"github.com/Nour-Ali/NodeBB-nour/internal/features/groups"
	"github.com/Nour-Ali/NodeBB-nour/internal/http/routes"
	"github.com/Nour-Ali/NodeBB-nour/pkg/config"
	"github.com/Nour-Ali/NodeBB-nour/pkg/database"
	"github.com/Nour-Ali/NodeBB-nour/pkg/logger"
	"github.com/Nour-Ali/NodeBB-nour/pkg/metrics"
	"github.com/Nour-Ali/NodeBB-nour/pkg/middleware"
	"github.com/Nour-Ali/NodeBB-nour/pkg/request"
	socketioserver "github.com/Nour-Ali/NodeBB-nour/pkg/socketio"
	"github.com/Nour-Ali/NodeBB-nour/pkg/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLogger, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Dir:    cfg.LogDir,
		Pretty: !cfg.IsProduction(),
	})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	st, db, err := openStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("store initialization failed", slog.String("backend", cfg.StoreBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(); err != nil {
			appLogger.Error("store close failed", slog.String("error", err.Error()))
		}
	}()

	feature := bootstrap.NewGroups(st, cfg, appLogger)
	defer feature.Settings.Close()

	if cfg.Groups.BootstrapSystem {
		if err := bootstrap.EnsureSystemGroups(ctx, feature.Creator, appLogger); err != nil {
			appLogger.Error("ensure system groups failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	router := gin.New()
	router.Use(middleware.Recovery(appLogger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Socket.IO is mounted before the rest of the stack
	if cfg.SocketIOEnabled {
		socketIOServer, err := socketioserver.NewServer(appLogger, cfg.JWTSecret)
		if err != nil {
			appLogger.Error("socket.io server initialization failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer socketIOServer.Close()

		router.GET("/socket.io/*any", gin.WrapH(socketIOServer.GetHandler()))
		router.POST("/socket.io/*any", gin.WrapH(socketIOServer.GetHandler()))
		groups.BroadcastCreated(feature.Hooks, socketIOServer)
		groups.NotifyOwner(feature.Hooks, socketIOServer)

		appLogger.Info("socket.io server initialized")
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer rateLimiter.Stop()

	router.Use(middleware.RequestID())
	router.Use(middleware.Compression(middleware.BestSpeed, "/metrics"))
	router.Use(middleware.RequestLogger(appLogger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CacheControl("/api"))
	router.Use(middleware.RequestSizeLimit(1 << 20))
	router.Use(metrics.Middleware())
	router.Use(rateLimiter.Middleware())
	router.Use(request.Handler(appLogger))

	routes.Register(router, routes.Dependencies{
		Config: cfg,
		Logger: appLogger,
		Store:  st,
		DB:     db,
		Groups: feature.Handler,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		appLogger.Info("server starting",
			slog.String("addr", cfg.ServerAddress()),
			slog.String("env", cfg.Env),
			slog.String("store", st.Backend()),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("server listen failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("server shutdown failed", slog.String("error", err.Error()))
	} else {
		appLogger.Info("server stopped gracefully")
	}

	// Let in-flight action:group.create listeners finish before the store closes.
	if err := feature.Hooks.ActionCreate.Wait(shutdownCtx); err != nil {
		appLogger.Warn("group listeners still running at shutdown", slog.String("error", err.Error()))
	}
}

// openStore connects the configured backend. db is nil for redis.
func openStore(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) (store.Store, *gorm.DB, error) {
	if cfg.StoreBackend == config.BackendRedis {
		st, err := store.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		appLogger.Info("redis store connected", slog.String("addr", cfg.Redis.Addr))
		return st, nil, nil
	}

	db, err := database.Connect(ctx, cfg.Database, appLogger)
	if err != nil {
		return nil, nil, err
	}
	if err := bootstrap.ApplyDatabaseMigrations(db, cfg, appLogger); err != nil {
		_ = database.Close(db, appLogger)
		return nil, nil, err
	}
	return store.NewSQL(db), db, nil
}
