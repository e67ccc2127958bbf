package bootstrap

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/Nour-Ali/NodeBB-nour/pkg/config"
	"github.com/Nour-Ali/NodeBB-nour/pkg/database/migrations"
)

// ApplyDatabaseMigrations runs the registered migrations when enabled via
// configuration. Importing pkg/store registers the store tables.
func ApplyDatabaseMigrations(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if !cfg.Database.RunMigrations {
		logger.Info("database migrations skipped", slog.String("env_var", "DB_RUN_MIGRATIONS=false"))
		return nil
	}

	if err := migrations.Run(db, logger); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	logger.Info("database migrations applied successfully")
	return nil
}
