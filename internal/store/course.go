package store

import (
	"context"

	"github.com/phrazzld/demo-api/internal/domain"
)

// CourseStore defines the interface for course data persistence.
type CourseStore interface {
	// List returns every course in storage order. An empty store yields an
	// empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Course, error)

	// GetByID retrieves a course by its identity.
	// Returns ErrCourseNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Course, error)

	// Create saves a new course and sets its ID to the generated identity.
	Create(ctx context.Context, course *domain.Course) error

	// Update persists every mutable field of an existing course.
	// Returns ErrCourseNotFound if no row has course.ID.
	Update(ctx context.Context, course *domain.Course) error

	// Delete removes a course by its identity.
	// Returns ErrCourseNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a course with the identity exists.
	Exists(ctx context.Context, id int64) (bool, error)
}
