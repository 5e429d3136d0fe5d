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
	courseStoreComponent = "course_store"
	courseColumns        = "id, code, title, description, credit"
)

// CourseStore implements store.CourseStore on database/sql.
type CourseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCourseStore creates a CourseStore. If logger is nil, a default logger will be used.
func NewCourseStore(db store.DBTX, logger *slog.Logger) *CourseStore {
	if db == nil {
		// ALLOW-PANIC: constructor wiring error
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseStore{
		db:     db,
		logger: logger,
	}
}

var _ store.CourseStore = (*CourseStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (*domain.Course, error) {
	var c domain.Course
	if err := row.Scan(&c.ID, &c.Code, &c.Title, &c.Description, &c.Credit); err != nil {
		return nil, err
	}
	return &c, nil
}

// List implements store.CourseStore.List.
func (s *CourseStore) List(ctx context.Context) ([]*domain.Course, error) {
	log := logger.ForComponent(ctx, s.logger, courseStoreComponent)

	rows, err := s.db.QueryContext(ctx, "SELECT "+courseColumns+" FROM courses ORDER BY id")
	if err != nil {
		log.Error("failed to list courses", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("course", "list", "failed to query courses", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, store.NewStoreError("course", "list", "failed to scan course", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("course", "list", "failed to iterate courses", err)
	}

	log.Debug("listed courses", slog.Int("count", len(courses)))
	return courses, nil
}

// GetByID implements store.CourseStore.GetByID.
func (s *CourseStore) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	log := logger.ForComponent(ctx, s.logger, courseStoreComponent)

	c, err := scanCourse(s.db.QueryRowContext(ctx,
		"SELECT "+courseColumns+" FROM courses WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("course not found", slog.Int64("course_id", id))
			return nil, store.ErrCourseNotFound
		}
		log.Error("failed to get course", slog.String("error", redact.Error(err)), slog.Int64("course_id", id))
		return nil, store.NewStoreError("course", "get", "failed to query course", MapError(err))
	}
	return c, nil
}

// Create implements store.CourseStore.Create.
func (s *CourseStore) Create(ctx context.Context, course *domain.Course) error {
	log := logger.ForComponent(ctx, s.logger, courseStoreComponent)

	query := `
		INSERT INTO courses (code, title, description, credit)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		course.Code, course.Title, course.Description, course.Credit,
	).Scan(&course.ID)
	if err != nil {
		log.Error("failed to create course", slog.String("error", redact.Error(err)))
		return store.NewStoreError("course", "create", "failed to insert course", MapError(err))
	}

	log.Info("course created", slog.Int64("course_id", course.ID))
	return nil
}

// Update implements store.CourseStore.Update.
func (s *CourseStore) Update(ctx context.Context, course *domain.Course) error {
	log := logger.ForComponent(ctx, s.logger, courseStoreComponent)

	query := `
		UPDATE courses
		SET code = $1, title = $2, description = $3, credit = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		course.Code, course.Title, course.Description, course.Credit, course.ID)
	if err != nil {
		log.Error("failed to update course", slog.String("error", redact.Error(err)), slog.Int64("course_id", course.ID))
		return store.NewStoreError("course", "update", "failed to update course", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrCourseNotFound); err != nil {
		return err
	}

	log.Info("course updated", slog.Int64("course_id", course.ID))
	return nil
}

// Delete implements store.CourseStore.Delete.
func (s *CourseStore) Delete(ctx context.Context, id int64) error {
	log := logger.ForComponent(ctx, s.logger, courseStoreComponent)

	result, err := s.db.ExecContext(ctx, "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete course", slog.String("error", redact.Error(err)), slog.Int64("course_id", id))
		return store.NewStoreError("course", "delete", "failed to delete course", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrCourseNotFound); err != nil {
		return err
	}

	log.Info("course deleted", slog.Int64("course_id", id))
	return nil
}

// Exists implements store.CourseStore.Exists.
func (s *CourseStore) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := existsByID(ctx, s.db, "courses", id)
	if err != nil {
		return false, store.NewStoreError("course", "exists", "failed to check course", MapError(err))
	}
	return exists, nil
}
