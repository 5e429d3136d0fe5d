// Package migrations embeds the SQL schema for every supported database and
// applies it with goose.
//
// The schema exists once per dialect: postgres/ for the pgx driver and
// sqlite/ for mattn/go-sqlite3. Both directories carry the same versions so a
// database can be moved between drivers without renumbering.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
)

// TableName is the goose version table.
const TableName = "schema_migrations"

//go:embed postgres/*.sql sqlite/*.sql
var embedded embed.FS

// Commands lists the accepted values for Run's command argument.
var Commands = []string{"up", "down", "reset", "status", "version"}

// goose keeps its configuration in package globals.
var mu sync.Mutex

type dialect struct {
	goose string
	dir   string
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case "pgx", "postgres":
		return dialect{goose: "postgres", dir: "postgres"}, nil
	case "sqlite3", "sqlite":
		return dialect{goose: "sqlite3", dir: "sqlite"}, nil
	default:
		return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Up applies every pending migration.
func Up(db *sql.DB, driver string, logger *slog.Logger) error {
	return Run(db, driver, "up", logger)
}

// Run executes a goose command against db using the schema for driver.
func Run(db *sql.DB, driver, command string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		slog.String("component", "migrations"),
		slog.String("command", command),
		slog.String("driver", driver),
	)

	d, err := dialectFor(driver)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedded)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(&slogGooseLogger{logger: logger})
	goose.SetTableName(TableName)
	if err := goose.SetDialect(d.goose); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	start := time.Now()
	switch command {
	case "up":
		err = goose.Up(db, d.dir)
	case "down":
		err = goose.Down(db, d.dir)
	case "reset":
		err = goose.Reset(db, d.dir)
	case "status":
		err = goose.Status(db, d.dir)
	case "version":
		err = goose.Version(db, d.dir)
	default:
		return fmt.Errorf(
			"unknown migration command: %s (expected up, down, reset, status, or version)",
			command,
		)
	}

	if err != nil {
		logger.Error("migration command failed",
			slog.Any("error", err),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}

	logger.Info("migration command executed successfully",
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

// CurrentVersion reports the highest applied migration version.
func CurrentVersion(db *sql.DB, driver string) (int64, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return 0, err
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetTableName(TableName)
	if err := goose.SetDialect(d.goose); err != nil {
		return 0, fmt.Errorf("failed to set dialect: %w", err)
	}
	return goose.GetDBVersion(db)
}

// slogGooseLogger adapts the goose logger interface to use slog
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level and does NOT exit; failures are returned from Run.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
