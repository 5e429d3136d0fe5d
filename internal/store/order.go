package store

import (
	"context"

	"github.com/phrazzld/demo-api/internal/domain"
)

// OrderStore defines the interface for order data persistence.
type OrderStore interface {
	// List returns every order in storage order. An empty store yields an
	// empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Order, error)

	// GetByID retrieves an order by its identity.
	// Returns ErrOrderNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// Create saves a new order, including its server-assigned status and
	// CreatedAt, and sets its ID to the generated identity.
	Create(ctx context.Context, order *domain.Order) error

	// Update persists every mutable field of an existing order. CreatedAt is
	// never rewritten.
	// Returns ErrOrderNotFound if no row has order.ID.
	Update(ctx context.Context, order *domain.Order) error

	// Delete removes an order by its identity.
	// Returns ErrOrderNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether an order with the identity exists.
	Exists(ctx context.Context, id int64) (bool, error)
}
