package store

import (
	"context"

	"github.com/phrazzld/demo-api/internal/domain"
)

// ProductStore defines the interface for product data persistence.
type ProductStore interface {
	// List returns every product in storage order. An empty store yields an
	// empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Product, error)

	// GetByID retrieves a product by its identity.
	// Returns ErrProductNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Create saves a new product and sets its ID to the generated identity.
	Create(ctx context.Context, product *domain.Product) error

	// Update persists every mutable field of an existing product.
	// Returns ErrProductNotFound if no row has product.ID.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product by its identity.
	// Returns ErrProductNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a product with the identity exists.
	Exists(ctx context.Context, id int64) (bool, error)
}
