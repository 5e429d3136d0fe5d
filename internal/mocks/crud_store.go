package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/demo-api/internal/domain"
	"github.com/phrazzld/demo-api/internal/store"
)

// MockCrudStore is an in-memory store for any entity with an int64 identity.
// Instantiated with a domain type it satisfies the matching store interface,
// e.g. *MockCrudStore[domain.Course] is a store.CourseStore.
//
// Function fields override the default behavior; Err, when set, is returned
// by every operation without a function override.
type MockCrudStore[T any] struct {
	ListFn    func(ctx context.Context) ([]*T, error)
	GetByIDFn func(ctx context.Context, id int64) (*T, error)
	CreateFn  func(ctx context.Context, entity *T) error
	UpdateFn  func(ctx context.Context, entity *T) error
	DeleteFn  func(ctx context.Context, id int64) error
	ExistsFn  func(ctx context.Context, id int64) (bool, error)

	Err error

	mu       sync.Mutex
	rows     map[int64]T
	nextID   int64
	idOf     func(*T) *int64
	notFound error
}

func newMockCrudStore[T any](idOf func(*T) *int64, notFound error) *MockCrudStore[T] {
	return &MockCrudStore[T]{
		rows:     make(map[int64]T),
		idOf:     idOf,
		notFound: notFound,
	}
}

// NewMockCourseStore returns an empty in-memory store.CourseStore.
func NewMockCourseStore() *MockCrudStore[domain.Course] {
	return newMockCrudStore(func(c *domain.Course) *int64 { return &c.ID }, store.ErrCourseNotFound)
}

// NewMockOrderStore returns an empty in-memory store.OrderStore.
func NewMockOrderStore() *MockCrudStore[domain.Order] {
	return newMockCrudStore(func(o *domain.Order) *int64 { return &o.ID }, store.ErrOrderNotFound)
}

// NewMockProductStore returns an empty in-memory store.ProductStore.
func NewMockProductStore() *MockCrudStore[domain.Product] {
	return newMockCrudStore(func(p *domain.Product) *int64 { return &p.ID }, store.ErrProductNotFound)
}

// NewMockStudentStore returns an empty in-memory store.StudentStore.
func NewMockStudentStore() *MockCrudStore[domain.Student] {
	return newMockCrudStore(func(s *domain.Student) *int64 { return &s.ID }, store.ErrStudentNotFound)
}

var (
	_ store.CourseStore  = (*MockCrudStore[domain.Course])(nil)
	_ store.OrderStore   = (*MockCrudStore[domain.Order])(nil)
	_ store.ProductStore = (*MockCrudStore[domain.Product])(nil)
	_ store.StudentStore = (*MockCrudStore[domain.Student])(nil)
)

// Seed stores entity as if it had been created and returns its new ID.
func (m *MockCrudStore[T]) Seed(entity T) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insert(&entity)
}

// Len returns the number of stored entities.
func (m *MockCrudStore[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *MockCrudStore[T]) insert(entity *T) int64 {
	m.nextID++
	*m.idOf(entity) = m.nextID
	m.rows[m.nextID] = *entity
	return m.nextID
}

// List returns entities in insertion order.
func (m *MockCrudStore[T]) List(ctx context.Context) ([]*T, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*T, 0, len(m.rows))
	for id := int64(1); id <= m.nextID; id++ {
		if row, ok := m.rows[id]; ok {
			out = append(out, &row)
		}
	}
	return out, nil
}

func (m *MockCrudStore[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok {
		return nil, m.notFound
	}
	return &row, nil
}

func (m *MockCrudStore[T]) Create(ctx context.Context, entity *T) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, entity)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.insert(entity)
	return nil
}

func (m *MockCrudStore[T]) Update(ctx context.Context, entity *T) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, entity)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := *m.idOf(entity)
	if _, ok := m.rows[id]; !ok {
		return m.notFound
	}
	m.rows[id] = *entity
	return nil
}

func (m *MockCrudStore[T]) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return m.notFound
	}
	delete(m.rows, id)
	return nil
}

func (m *MockCrudStore[T]) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}
	if m.Err != nil {
		return false, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.rows[id]
	return ok, nil
}
