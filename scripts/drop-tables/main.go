package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/Nour-Ali/NodeBB-nour/pkg/config"
	"github.com/Nour-Ali/NodeBB-nour/pkg/database"
	"github.com/Nour-Ali/NodeBB-nour/pkg/logger"
)

const confirmPhrase = "DROP STORE TABLES"

var tables = []string{"legacy_zset", "legacy_set", "legacy_hash"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: true})
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	db, err := database.Connect(context.Background(), cfg.Database, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = database.Close(db, appLogger) }()

	fmt.Println("\nWARNING: this drops every store table and all groups, settings and indexes in them.")
	fmt.Println("This action CANNOT be undone.")
	fmt.Printf("\nType '%s' to confirm: ", confirmPhrase)

	confirmation, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.TrimSpace(confirmation) != confirmPhrase {
		fmt.Println("\nOperation cancelled. Database unchanged.")
		return
	}

	migrator := db.Migrator()
	dropped := 0
	for _, table := range tables {
		if !migrator.HasTable(table) {
			appLogger.Info("table not present", slog.String("table", table))
			continue
		}
		if err := migrator.DropTable(table); err != nil {
			appLogger.Error("Failed to drop table", slog.String("table", table), slog.String("error", err.Error()))
			os.Exit(1)
		}
		dropped++
		appLogger.Info("table dropped", slog.String("table", table))
	}

	fmt.Printf("\nDropped %d table(s)\n", dropped)
}
