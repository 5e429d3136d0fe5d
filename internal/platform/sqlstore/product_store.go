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
	productStoreComponent = "product_store"
	productColumns        = "id, name, category, price, stock"
)

// ProductStore implements store.ProductStore on database/sql.
type ProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProductStore creates a ProductStore. If logger is nil, a default logger will be used.
func NewProductStore(db store.DBTX, logger *slog.Logger) *ProductStore {
	if db == nil {
		// ALLOW-PANIC: constructor wiring error
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductStore{
		db:     db,
		logger: logger,
	}
}

var _ store.ProductStore = (*ProductStore)(nil)

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock); err != nil {
		return nil, err
	}
	return &p, nil
}

// List implements store.ProductStore.List.
func (s *ProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	log := logger.ForComponent(ctx, s.logger, productStoreComponent)

	rows, err := s.db.QueryContext(ctx, "SELECT "+productColumns+" FROM products ORDER BY id")
	if err != nil {
		log.Error("failed to list products", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("product", "list", "failed to query products", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, store.NewStoreError("product", "list", "failed to scan product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("product", "list", "failed to iterate products", err)
	}

	log.Debug("listed products", slog.Int("count", len(products)))
	return products, nil
}

// GetByID implements store.ProductStore.GetByID.
func (s *ProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	log := logger.ForComponent(ctx, s.logger, productStoreComponent)

	p, err := scanProduct(s.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("product not found", slog.Int64("product_id", id))
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to get product", slog.String("error", redact.Error(err)), slog.Int64("product_id", id))
		return nil, store.NewStoreError("product", "get", "failed to query product", MapError(err))
	}
	return p, nil
}

// Create implements store.ProductStore.Create.
func (s *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	log := logger.ForComponent(ctx, s.logger, productStoreComponent)

	query := `
		INSERT INTO products (name, category, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		product.Name, product.Category, product.Price, product.Stock,
	).Scan(&product.ID)
	if err != nil {
		log.Error("failed to create product", slog.String("error", redact.Error(err)))
		return store.NewStoreError("product", "create", "failed to insert product", MapError(err))
	}

	log.Info("product created", slog.Int64("product_id", product.ID))
	return nil
}

// Update implements store.ProductStore.Update.
func (s *ProductStore) Update(ctx context.Context, product *domain.Product) error {
	log := logger.ForComponent(ctx, s.logger, productStoreComponent)

	query := `
		UPDATE products
		SET name = $1, category = $2, price = $3, stock = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		product.Name, product.Category, product.Price, product.Stock, product.ID)
	if err != nil {
		log.Error("failed to update product", slog.String("error", redact.Error(err)), slog.Int64("product_id", product.ID))
		return store.NewStoreError("product", "update", "failed to update product", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrProductNotFound); err != nil {
		return err
	}

	log.Info("product updated", slog.Int64("product_id", product.ID))
	return nil
}

// Delete implements store.ProductStore.Delete.
func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	log := logger.ForComponent(ctx, s.logger, productStoreComponent)

	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete product", slog.String("error", redact.Error(err)), slog.Int64("product_id", id))
		return store.NewStoreError("product", "delete", "failed to delete product", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrProductNotFound); err != nil {
		return err
	}

	log.Info("product deleted", slog.Int64("product_id", id))
	return nil
}

// Exists implements store.ProductStore.Exists.
func (s *ProductStore) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := existsByID(ctx, s.db, "products", id)
	if err != nil {
		return false, store.NewStoreError("product", "exists", "failed to check product", MapError(err))
	}
	return exists, nil
}
