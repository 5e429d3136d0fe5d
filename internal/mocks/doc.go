// Package mocks provides centralized mock implementations for testing.
//
// Each mock keeps an in-memory default behavior and exposes function fields
// that override individual methods:
//
//	users := mocks.NewMockUserStore()
//	users.GetByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
//	    return nil, errors.New("db down")
//	}
//
// The resource stores share one generic implementation, MockCrudStore.
package mocks
