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
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, expected: true},
		{name: "ErrContactNotFound", err: ErrContactNotFound, expected: true},
		{
			name:     "wrapped ErrContactNotFound",
			err:      fmt.Errorf("failed to get contact: %w", ErrContactNotFound),
			expected: true,
		},
		{name: "duplicate is not not-found", err: ErrEmailExists, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create user: %w", ErrEmailExists)))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestContactFilterOffset(t *testing.T) {
	assert.Equal(t, 0, ContactFilter{Page: 1, Limit: 7}.Offset())
	assert.Equal(t, 14, ContactFilter{Page: 3, Limit: 7}.Offset())
	assert.Equal(t, 0, ContactFilter{Page: 0, Limit: 7}.Offset())
}
