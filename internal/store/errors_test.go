package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrCourseNotFound",
			err:      fmt.Errorf("failed to find course: %w", ErrCourseNotFound),
			expected: true,
		},
		{
			name:     "ErrOrderNotFound",
			err:      ErrOrderNotFound,
			expected: true,
		},
		{
			name:     "ErrUsernameExists",
			err:      ErrUsernameExists,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrUsernameExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create user: %w", ErrUsernameExists)))
	assert.False(t, IsDuplicateError(ErrStudentNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestEntityNotFoundErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrCourseNotFound, ErrProductNotFound))
	assert.True(t, errors.Is(ErrStudentNotFound, ErrNotFound))
	assert.Equal(t, "entity not found: product", ErrProductNotFound.Error())
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")

	err := NewStoreError("course", "list", "query failed", cause)
	assert.Equal(t, "list operation on course failed: query failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("order", "update", "no id", nil)
	assert.Equal(t, "update operation on order failed: no id", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
