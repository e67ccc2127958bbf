package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/Nour-Ali/NodeBB-nour/internal/bootstrap"
	"github.com/Nour-Ali/NodeBB-nour/internal/features/groups"
	"github.com/Nour-Ali/NodeBB-nour/pkg/config"
	"github.com/Nour-Ali/NodeBB-nour/pkg/database"
	"github.com/Nour-Ali/NodeBB-nour/pkg/logger"
	"github.com/Nour-Ali/NodeBB-nour/pkg/store"
)

func main() {
	var (
		name        = flag.String("name", "", "group name (required)")
		description = flag.String("description", "", "group description")
		userTitle   = flag.String("title", "", "badge title shown next to members")
		owner       = flag.String("owner", "", "uid of the initial owner")
		hidden      = flag.Bool("hidden", false, "keep the group out of public listings")
		private     = flag.Bool("private", true, "require owner approval to join")
		system      = flag.Bool("system", false, "mark the group as a system group")
	)
	flag.Parse()

	if *name == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: true})
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = st.Close() }()

	feature := bootstrap.NewGroups(st, cfg, appLogger)
	defer feature.Settings.Close()

	in := groups.CreateInput{
		Name:        *name,
		Description: *description,
		UserTitle:   *userTitle,
		Hidden:      flagValue(*hidden),
		Private:     flagValue(*private),
		System:      *system,
	}
	if *owner != "" {
		in.OwnerUID = *owner
	}

	group, err := feature.Creator.Create(ctx, in)
	if err != nil {
		appLogger.Error("Failed to create group", slog.String("name", *name), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := feature.Hooks.ActionCreate.Wait(ctx); err != nil {
		appLogger.Warn("group listeners did not finish", slog.String("error", err.Error()))
	}

	out, _ := json.MarshalIndent(groups.NewView(group), "", "  ")
	fmt.Println(string(out))
}

// flagValue renders a boolean the way stored flags are written.
func flagValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func openStore(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) (store.Store, error) {
	if cfg.StoreBackend == config.BackendRedis {
		return store.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	db, err := database.Connect(ctx, cfg.Database, appLogger)
	if err != nil {
		return nil, err
	}
	if err := bootstrap.ApplyDatabaseMigrations(db, cfg, appLogger); err != nil {
		_ = database.Close(db, appLogger)
		return nil, err
	}
	return store.NewSQL(db), nil
}
