// Package main implements the entry point for the demo API server, a
// CRUD service for users, courses, orders, products and students.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phrazzld/demo-api/internal/clock"
	"github.com/phrazzld/demo-api/internal/config"
	"github.com/phrazzld/demo-api/internal/platform/logger"
	"github.com/phrazzld/demo-api/internal/platform/migrations"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command ("+strings.Join(migrations.Commands, "|")+") and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		fmt.Fprintf(os.Stderr, "demo-api: %v\n", err)
		os.Exit(1)
	}
}

// run wires the application from configuration and blocks until the server
// stops. With a migration command it only migrates.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	if migrateCmd != "" {
		return migrations.Run(db, cfg.Database.Driver, migrateCmd, log)
	}

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db, cfg.Database.Driver, log); err != nil {
			return err
		}
	}

	app := newApplication(cfg, db, log, clock.RealClock{})
	return app.serve(ctx)
}
