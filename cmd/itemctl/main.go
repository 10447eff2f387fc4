// Command itemctl inspects and serves the custom item catalog.
//
// Usage:
//
//	go run ./cmd/itemctl list                        # list item ids
//	go run ./cmd/itemctl show <id>                   # item definition
//	go run ./cmd/itemctl lore <id>                   # rendered lore
//	go run ./cmd/itemctl modifier <actor.yml> <STAT> # aggregate modifier for an actor
//	go run ./cmd/itemctl import <items.yml>          # copy a YAML catalog into PostgreSQL
//	go run ./cmd/itemctl watch                       # keep the catalog loaded, reload on SIGHUP
//
// Config path: config/rpginventory.yaml, override with RPGINV_CONFIG.
// A .env file in the working directory is loaded first if present;
// RPGINV_DB_HOST, RPGINV_DB_PASSWORD and RPGINV_LOG_LEVEL override the config.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/udisondev/rpginventory/internal/config"
	"github.com/udisondev/rpginventory/internal/data"
	"github.com/udisondev/rpginventory/internal/db"
	"github.com/udisondev/rpginventory/internal/game/equip"
	"github.com/udisondev/rpginventory/internal/game/lore"
	"github.com/udisondev/rpginventory/internal/game/modifier"
	"github.com/udisondev/rpginventory/internal/lang"
)

const ConfigPath = "config/rpginventory.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// app - собранный движок предметов.
type app struct {
	cfg        config.Inventory
	registry   *data.Registry
	source     data.Source
	language   *lang.Language
	filter     *equip.Filter
	aggregator *modifier.Aggregator
	renderer   *lore.Renderer
	database   *db.DB
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("no command given")
	}

	// .env необязателен
	envErr := godotenv.Load()

	cfgPath := ConfigPath
	if p := os.Getenv(config.EnvConfigPath); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadInventory(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.ApplyEnv(os.Getenv)

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	if envErr == nil {
		slog.Debug("loaded .env file")
	}

	cmd, ok := commands[args[0]]
	if !ok {
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	a, err := newApp(ctx, cfg, cmd.needsDB)
	if err != nil {
		return err
	}
	defer a.close()

	if cmd.needsCatalog {
		if _, err := a.registry.Reload(ctx, a.source); err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
	}

	return cmd.run(ctx, a, args[1:])
}

func newApp(ctx context.Context, cfg config.Inventory, needsDB bool) (*app, error) {
	language, err := lang.Load(cfg.LanguagePath)
	if err != nil {
		return nil, fmt.Errorf("loading language: %w", err)
	}

	a := &app{
		cfg:      cfg,
		registry: data.NewRegistry(),
		language: language,
	}
	a.filter = equip.NewFilter(a.registry, language)
	a.aggregator = modifier.NewAggregator(a.registry, a.filter)
	a.renderer = lore.NewRenderer(cfg.Lore.Pattern, cfg.Lore.Separator, language, a.registry)

	switch cfg.Source {
	case config.SourceFile:
		a.source = data.FileSource{Path: cfg.ItemsPath}
	case config.SourceDir:
		a.source = data.DirSource{Dir: cfg.ItemsPath}
	case config.SourceDatabase:
		needsDB = true
	}

	if needsDB {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			database.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database connected")
		a.database = database
		if cfg.Source == config.SourceDatabase {
			a.source = db.NewItemRepository(database.Pool())
		}
	}

	return a, nil
}

func (a *app) close() {
	if a.database != nil {
		a.database.Close()
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
