package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContact(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	contact, err := NewContact(owner, "A", "a@x.com", "123", true)
	require.NoError(t, err)
	assert.Equal(t, owner, contact.Owner)
	assert.Equal(t, "A", contact.Name)
	assert.True(t, contact.Favorite)
	assert.False(t, contact.CreatedAt.IsZero())

	tests := []struct {
		name  string
		owner uuid.UUID
		cName string
		email string
		phone string
		field string
	}{
		{"missing owner", uuid.Nil, "A", "a@x.com", "1", "owner"},
		{"missing name", owner, "", "a@x.com", "1", "name"},
		{"missing email", owner, "A", "", "1", "email"},
		{"missing phone", owner, "A", "a@x.com", "", "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewContact(tt.owner, tt.cName, tt.email, tt.phone, false)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}
