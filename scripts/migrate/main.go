package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/Nour-Ali/NodeBB-nour/pkg/config"
	"github.com/Nour-Ali/NodeBB-nour/pkg/database"
	"github.com/Nour-Ali/NodeBB-nour/pkg/database/migrations"
	"github.com/Nour-Ali/NodeBB-nour/pkg/logger"

	// registers the legacy_* store tables
	_ "github.com/Nour-Ali/NodeBB-nour/pkg/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: true})
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	if cfg.StoreBackend != config.BackendSQL {
		appLogger.Warn("STORE_BACKEND is not sql; migrating the configured database anyway", slog.String("backend", cfg.StoreBackend))
	}

	db, err := database.Connect(context.Background(), cfg.Database, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = database.Close(db, appLogger) }()

	appLogger.Info("Starting database migrations...")

	if err := migrations.Run(db, appLogger); err != nil {
		appLogger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	appLogger.Info("Database migrations completed successfully")
	fmt.Println("\nStore tables created/updated successfully")
}
