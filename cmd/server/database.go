package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/phrazzld/demo-api/internal/config"
	"github.com/phrazzld/demo-api/internal/redact"
)

// pingTimeout bounds the connectivity check at startup.
const pingTimeout = 5 * time.Second

// openDatabase establishes a connection to the database and configures the
// connection pool. The returned *sql.DB has answered a ping.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %s", redact.Error(err))
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	if isInMemorySQLite(cfg) {
		// every connection would otherwise open its own empty database
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %s", redact.Error(err))
	}

	logger.Info("Database connection established", slog.String("driver", cfg.Driver))
	return db, nil
}

func isInMemorySQLite(cfg config.DatabaseConfig) bool {
	return cfg.Driver == "sqlite3" &&
		(strings.Contains(cfg.URL, ":memory:") || strings.Contains(cfg.URL, "mode=memory"))
}
