package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		email        string
		password     string
		subscription Subscription
		wantErr      error
		wantSub      Subscription
	}{
		{
			name:     "defaults to starter",
			email:    "user@example.com",
			password: "1234567",
			wantSub:  SubscriptionStarter,
		},
		{
			name:         "explicit tier",
			email:        "pro@example.com",
			password:     "longerpassword",
			subscription: SubscriptionPro,
			wantSub:      SubscriptionPro,
		},
		{
			name:     "empty email",
			email:    "",
			password: "1234567",
			wantErr:  ErrEmptyContent,
		},
		{
			name:     "malformed email",
			email:    "not-an-email",
			password: "1234567",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "password too short",
			email:    "user@example.com",
			password: "123456",
			wantErr:  ErrInvalidPassword,
		},
		{
			name:         "unknown tier",
			email:        "user@example.com",
			password:     "1234567",
			subscription: "enterprise",
			wantErr:      ErrInvalidSubscription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.email, tt.password, "", tt.subscription)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				assert.True(t, IsValidationError(err))
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.Equal(t, tt.wantSub, user.Subscription)
			assert.False(t, user.Verify, "new users start unverified")
			assert.NotEmpty(t, user.VerificationToken)
			assert.Empty(t, user.Token)
			assert.True(t, strings.HasPrefix(user.AvatarURL, "https://www.gravatar.com/avatar/"))
		})
	}
}

func TestUserValidate_PersistedUserNeedsHash(t *testing.T) {
	t.Parallel()

	user := &User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		Subscription: SubscriptionBusiness,
	}
	assert.ErrorIs(t, user.Validate(), ErrInvalidPassword)

	user.HashedPassword = "$2a$10$hash"
	assert.NoError(t, user.Validate())
}

func TestGravatarURL_NormalizesEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, GravatarURL("user@example.com"), GravatarURL("  User@Example.com "))
}

func TestSubscriptionValid(t *testing.T) {
	t.Parallel()

	for _, s := range Subscriptions() {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Subscription("free").Valid())
	assert.False(t, Subscription("").Valid())
}
