package store

import (
	"context"

	"github.com/phrazzld/demo-api/internal/domain"
)

// StudentStore defines the interface for student data persistence.
type StudentStore interface {
	// List returns every student in storage order. An empty store yields an
	// empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Student, error)

	// GetByID retrieves a student by its identity.
	// Returns ErrStudentNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Student, error)

	// Create saves a new student and sets its ID to the generated identity.
	Create(ctx context.Context, student *domain.Student) error

	// Update persists every mutable field of an existing student.
	// Returns ErrStudentNotFound if no row has student.ID.
	Update(ctx context.Context, student *domain.Student) error

	// Delete removes a student by its identity.
	// Returns ErrStudentNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a student with the identity exists.
	Exists(ctx context.Context, id int64) (bool, error)
}
