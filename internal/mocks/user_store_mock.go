package mocks

import (
	"context"

	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/Anastasia-front/contacts-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// TestifyMockUserStore is a mock of store.UserStore interface for use with testify/mock
type TestifyMockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*TestifyMockUserStore)(nil)

func userResult(args mock.Arguments) (*domain.User, error) {
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.UserStore.Create
func (m *TestifyMockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

// GetByID is a mock implementation of store.UserStore.GetByID
func (m *TestifyMockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return userResult(m.Called(ctx, id))
}

// GetByEmail is a mock implementation of store.UserStore.GetByEmail
func (m *TestifyMockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return userResult(m.Called(ctx, email))
}

// GetByVerificationToken is a mock implementation of store.UserStore.GetByVerificationToken
func (m *TestifyMockUserStore) GetByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	return userResult(m.Called(ctx, token))
}

// SetToken is a mock implementation of store.UserStore.SetToken
func (m *TestifyMockUserStore) SetToken(ctx context.Context, id uuid.UUID, token string) error {
	return m.Called(ctx, id, token).Error(0)
}

// MarkVerified is a mock implementation of store.UserStore.MarkVerified
func (m *TestifyMockUserStore) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// UpdateSubscription is a mock implementation of store.UserStore.UpdateSubscription
func (m *TestifyMockUserStore) UpdateSubscription(
	ctx context.Context,
	id uuid.UUID,
	subscription domain.Subscription,
) (*domain.User, error) {
	return userResult(m.Called(ctx, id, subscription))
}

// UpdateAvatar is a mock implementation of store.UserStore.UpdateAvatar
func (m *TestifyMockUserStore) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (*domain.User, error) {
	return userResult(m.Called(ctx, id, avatarURL))
}
