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
			name:     "wrapped ErrNotFound",
			err:      fmt.Errorf("failed to do something: %w", ErrNotFound),
			expected: true,
		},
		{
			name:     "store error wrapping ErrNotFound",
			err:      NewStoreError("ucsbmenuitemreview", "get", "missing", ErrNotFound),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.False(t, IsDuplicateError(nil))
	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert: %w", ErrDuplicate)))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")

	t.Run("with wrapped error", func(t *testing.T) {
		err := NewStoreError("recommendationrequest", "create", "insert failed", cause)

		assert.Equal(t,
			"create operation on recommendationrequest failed: insert failed: connection refused",
			err.Error())
		assert.True(t, errors.Is(err, cause))

		var storeErr *StoreError
		assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &storeErr))
		assert.Equal(t, "create", storeErr.Operation)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("ucsbmenuitemreview", "list", "cursor closed", nil)

		assert.Equal(t, "list operation on ucsbmenuitemreview failed: cursor closed", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}
