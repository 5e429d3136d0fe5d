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
	studentStoreComponent = "student_store"
	studentColumns        = "id, first_name, last_name, email"
)

// StudentStore implements store.StudentStore on database/sql.
type StudentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewStudentStore creates a StudentStore. If logger is nil, a default logger will be used.
func NewStudentStore(db store.DBTX, logger *slog.Logger) *StudentStore {
	if db == nil {
		// ALLOW-PANIC: constructor wiring error
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StudentStore{
		db:     db,
		logger: logger,
	}
}

var _ store.StudentStore = (*StudentStore)(nil)

func scanStudent(row rowScanner) (*domain.Student, error) {
	var st domain.Student
	if err := row.Scan(&st.ID, &st.FirstName, &st.LastName, &st.Email); err != nil {
		return nil, err
	}
	return &st, nil
}

// List implements store.StudentStore.List.
func (s *StudentStore) List(ctx context.Context) ([]*domain.Student, error) {
	log := logger.ForComponent(ctx, s.logger, studentStoreComponent)

	rows, err := s.db.QueryContext(ctx, "SELECT "+studentColumns+" FROM students ORDER BY id")
	if err != nil {
		log.Error("failed to list students", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("student", "list", "failed to query students", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	students := make([]*domain.Student, 0)
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, store.NewStoreError("student", "list", "failed to scan student", err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("student", "list", "failed to iterate students", err)
	}

	log.Debug("listed students", slog.Int("count", len(students)))
	return students, nil
}

// GetByID implements store.StudentStore.GetByID.
func (s *StudentStore) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	log := logger.ForComponent(ctx, s.logger, studentStoreComponent)

	st, err := scanStudent(s.db.QueryRowContext(ctx,
		"SELECT "+studentColumns+" FROM students WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("student not found", slog.Int64("student_id", id))
			return nil, store.ErrStudentNotFound
		}
		log.Error("failed to get student", slog.String("error", redact.Error(err)), slog.Int64("student_id", id))
		return nil, store.NewStoreError("student", "get", "failed to query student", MapError(err))
	}
	return st, nil
}

// Create implements store.StudentStore.Create.
func (s *StudentStore) Create(ctx context.Context, student *domain.Student) error {
	log := logger.ForComponent(ctx, s.logger, studentStoreComponent)

	query := `
		INSERT INTO students (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		student.FirstName, student.LastName, student.Email,
	).Scan(&student.ID)
	if err != nil {
		log.Error("failed to create student", slog.String("error", redact.Error(err)))
		return store.NewStoreError("student", "create", "failed to insert student", MapError(err))
	}

	log.Info("student created", slog.Int64("student_id", student.ID))
	return nil
}

// Update implements store.StudentStore.Update.
func (s *StudentStore) Update(ctx context.Context, student *domain.Student) error {
	log := logger.ForComponent(ctx, s.logger, studentStoreComponent)

	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, email = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(ctx, query,
		student.FirstName, student.LastName, student.Email, student.ID)
	if err != nil {
		log.Error("failed to update student", slog.String("error", redact.Error(err)), slog.Int64("student_id", student.ID))
		return store.NewStoreError("student", "update", "failed to update student", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrStudentNotFound); err != nil {
		return err
	}

	log.Info("student updated", slog.Int64("student_id", student.ID))
	return nil
}

// Delete implements store.StudentStore.Delete.
func (s *StudentStore) Delete(ctx context.Context, id int64) error {
	log := logger.ForComponent(ctx, s.logger, studentStoreComponent)

	result, err := s.db.ExecContext(ctx, "DELETE FROM students WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete student", slog.String("error", redact.Error(err)), slog.Int64("student_id", id))
		return store.NewStoreError("student", "delete", "failed to delete student", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrStudentNotFound); err != nil {
		return err
	}

	log.Info("student deleted", slog.Int64("student_id", id))
	return nil
}

// Exists implements store.StudentStore.Exists.
func (s *StudentStore) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := existsByID(ctx, s.db, "students", id)
	if err != nil {
		return false, store.NewStoreError("student", "exists", "failed to check student", MapError(err))
	}
	return exists, nil
}
