package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/demo-api/internal/domain"
	"github.com/phrazzld/demo-api/internal/platform/logger"
	"github.com/phrazzld/demo-api/internal/redact"
	"github.com/phrazzld/demo-api/internal/store"
)

const (
	orderStoreComponent = "order_store"
	orderColumns        = "id, order_number, customer_name, total_amount, status, created_at"
)

// OrderStore implements store.OrderStore on database/sql.
type OrderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewOrderStore creates an OrderStore. If logger is nil, a default logger will be used.
func NewOrderStore(db store.DBTX, logger *slog.Logger) *OrderStore {
	if db == nil {
		// ALLOW-PANIC: constructor wiring error
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderStore{
		db:     db,
		logger: logger,
	}
}

var _ store.OrderStore = (*OrderStore)(nil)

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	if err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerName,
		&o.TotalAmount,
		&o.Status,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}
	// pgx returns timestamptz in the local zone.
	o.CreatedAt = o.CreatedAt.UTC()
	return &o, nil
}

// List implements store.OrderStore.List.
func (s *OrderStore) List(ctx context.Context) ([]*domain.Order, error) {
	log := logger.ForComponent(ctx, s.logger, orderStoreComponent)

	rows, err := s.db.QueryContext(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY id")
	if err != nil {
		log.Error("failed to list orders", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("order", "list", "failed to query orders", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, store.NewStoreError("order", "list", "failed to scan order", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("order", "list", "failed to iterate orders", err)
	}

	log.Debug("listed orders", slog.Int("count", len(orders)))
	return orders, nil
}

// GetByID implements store.OrderStore.GetByID.
func (s *OrderStore) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	log := logger.ForComponent(ctx, s.logger, orderStoreComponent)

	o, err := scanOrder(s.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("order not found", slog.Int64("order_id", id))
			return nil, store.ErrOrderNotFound
		}
		log.Error("failed to get order", slog.String("error", redact.Error(err)), slog.Int64("order_id", id))
		return nil, store.NewStoreError("order", "get", "failed to query order", MapError(err))
	}
	return o, nil
}

// Create implements store.OrderStore.Create.
func (s *OrderStore) Create(ctx context.Context, order *domain.Order) error {
	log := logger.ForComponent(ctx, s.logger, orderStoreComponent)

	query := `
		INSERT INTO orders (order_number, customer_name, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		order.OrderNumber,
		order.CustomerName,
		order.TotalAmount,
		order.Status,
		order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		log.Error("failed to create order", slog.String("error", redact.Error(err)))
		return store.NewStoreError("order", "create", "failed to insert order", MapError(err))
	}

	log.Info("order created", slog.Int64("order_id", order.ID))
	return nil
}

// Update implements store.OrderStore.Update. created_at is not part of the
// statement.
func (s *OrderStore) Update(ctx context.Context, order *domain.Order) error {
	log := logger.ForComponent(ctx, s.logger, orderStoreComponent)

	query := `
		UPDATE orders
		SET order_number = $1, customer_name = $2, total_amount = $3, status = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		order.OrderNumber, order.CustomerName, order.TotalAmount, order.Status, order.ID)
	if err != nil {
		log.Error("failed to update order", slog.String("error", redact.Error(err)), slog.Int64("order_id", order.ID))
		return store.NewStoreError("order", "update", "failed to update order", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrOrderNotFound); err != nil {
		return err
	}

	log.Info("order updated", slog.Int64("order_id", order.ID))
	return nil
}

// Delete implements store.OrderStore.Delete.
func (s *OrderStore) Delete(ctx context.Context, id int64) error {
	log := logger.ForComponent(ctx, s.logger, orderStoreComponent)

	result, err := s.db.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete order", slog.String("error", redact.Error(err)), slog.Int64("order_id", id))
		return store.NewStoreError("order", "delete", "failed to delete order", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrOrderNotFound); err != nil {
		return err
	}

	log.Info("order deleted", slog.Int64("order_id", id))
	return nil
}

// Exists implements store.OrderStore.Exists.
func (s *OrderStore) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := existsByID(ctx, s.db, "orders", id)
	if err != nil {
		return false, store.NewStoreError("order", "exists", "failed to check order", MapError(err))
	}
	return exists, nil
}
