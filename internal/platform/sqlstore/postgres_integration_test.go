//go:build integration

package sqlstore_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/demo-api/internal/domain"
	"github.com/phrazzld/demo-api/internal/platform/migrations"
	"github.com/phrazzld/demo-api/internal/platform/sqlstore"
	"github.com/phrazzld/demo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("demo"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(db, "pgx", discardLogger()))
	return db
}

func TestPostgresStores(t *testing.T) {
	db := setupPostgres(t)

	t.Run("duplicate username", func(t *testing.T) {
		users := sqlstore.NewUserStore(db, discardLogger())
		require.NoError(t, users.Create(ctx(), &domain.User{Username: "alice", Password: "pw"}))

		err := users.Create(ctx(), &domain.User{Username: "alice", Password: "pw"})
		assert.ErrorIs(t, err, store.ErrUsernameExists)
	})

	t.Run("order round trip", func(t *testing.T) {
		orders := sqlstore.NewOrderStore(db, discardLogger())
		created := time.Date(2024, 5, 6, 7, 8, 9, 123456000, time.UTC)

		o := &domain.Order{OrderNumber: "ORD-1", CustomerName: "Ana", TotalAmount: ptr(0.0)}
		o.PrepareForCreate(created)
		require.NoError(t, orders.Create(ctx(), o))

		got, err := orders.GetByID(ctx(), o.ID)
		require.NoError(t, err)
		assert.True(t, created.Equal(got.CreatedAt))
		assert.Equal(t, domain.DefaultOrderStatus, *got.Status)
	})

	t.Run("course update and delete", func(t *testing.T) {
		courses := sqlstore.NewCourseStore(db, discardLogger())

		c := &domain.Course{Code: "CS101", Title: "Intro", Description: ptr("d")}
		require.NoError(t, courses.Create(ctx(), c))

		c.Description = nil
		require.NoError(t, courses.Update(ctx(), c))

		got, err := courses.GetByID(ctx(), c.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Description)

		require.NoError(t, courses.Delete(ctx(), c.ID))
		assert.ErrorIs(t, courses.Delete(ctx(), c.ID), store.ErrCourseNotFound)
	})
}
