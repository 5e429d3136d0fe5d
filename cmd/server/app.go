package main

import (
	"database/sql"
	"log/slog"

	"github.com/phrazzld/demo-api/internal/api"
	"github.com/phrazzld/demo-api/internal/clock"
	"github.com/phrazzld/demo-api/internal/config"
	"github.com/phrazzld/demo-api/internal/observability"
	"github.com/phrazzld/demo-api/internal/platform/sqlstore"
)

// metricsNamespace prefixes every exported Prometheus metric.
const metricsNamespace = "demo"

// application holds the wired dependencies of the server.
type application struct {
	config  *config.Config
	db      *sql.DB
	logger  *slog.Logger
	metrics *observability.Metrics
	health  *observability.HealthHandler

	authHandler    *api.AuthHandler
	courseHandler  *api.CourseHandler
	orderHandler   *api.OrderHandler
	productHandler *api.ProductHandler
	studentHandler *api.StudentHandler
}

// newApplication builds stores and handlers on top of db.
func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger, clk clock.Clock) *application {
	if logger == nil {
		logger = slog.Default()
	}

	return &application{
		config:  cfg,
		db:      db,
		logger:  logger,
		metrics: observability.NewMetrics(metricsNamespace),
		health:  observability.NewHealthHandler(db),

		authHandler:    api.NewAuthHandler(sqlstore.NewUserStore(db, logger), logger),
		courseHandler:  api.NewCourseHandler(sqlstore.NewCourseStore(db, logger), logger),
		orderHandler:   api.NewOrderHandler(sqlstore.NewOrderStore(db, logger), clk, logger),
		productHandler: api.NewProductHandler(sqlstore.NewProductStore(db, logger), logger),
		studentHandler: api.NewStudentHandler(sqlstore.NewStudentStore(db, logger), logger),
	}
}
