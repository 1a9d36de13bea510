package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/Anastasia-front/contacts-api/internal/store"
	"github.com/google/uuid"
)

// MockUserStore implements store.UserStore in memory for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)

	// Errors returned by the default implementation when set
	CreateError     error
	GetByEmailError error

	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: make(map[uuid.UUID]*domain.User)}
}

// Put stores user directly, bypassing Create's checks.
func (m *MockUserStore) Put(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = copyUser(user)
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if m.CreateError != nil {
		return m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	user.Password = ""
	m.users[user.ID] = copyUser(user)
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return copyUser(u), nil
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.GetByEmailError != nil {
		return nil, m.GetByEmailError
	}
	return m.find(func(u *domain.User) bool { return u.Email == email })
}

// GetByVerificationToken implements the UserStore interface
func (m *MockUserStore) GetByVerificationToken(_ context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, store.ErrUserNotFound
	}
	return m.find(func(u *domain.User) bool { return u.VerificationToken == token })
}

func (m *MockUserStore) find(match func(*domain.User) bool) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if match(u) {
			return copyUser(u), nil
		}
	}
	return nil, store.ErrUserNotFound
}

// SetToken implements the UserStore interface
func (m *MockUserStore) SetToken(_ context.Context, id uuid.UUID, token string) error {
	_, err := m.update(id, func(u *domain.User) { u.Token = token })
	return err
}

// MarkVerified implements the UserStore interface
func (m *MockUserStore) MarkVerified(_ context.Context, id uuid.UUID) error {
	_, err := m.update(id, func(u *domain.User) {
		u.Verify = true
		u.VerificationToken = ""
	})
	return err
}

// UpdateSubscription implements the UserStore interface
func (m *MockUserStore) UpdateSubscription(
	_ context.Context,
	id uuid.UUID,
	subscription domain.Subscription,
) (*domain.User, error) {
	if !subscription.Valid() {
		return nil, domain.NewValidationError("subscription", "is not a known tier", domain.ErrInvalidSubscription)
	}
	return m.update(id, func(u *domain.User) { u.Subscription = subscription })
}

// UpdateAvatar implements the UserStore interface
func (m *MockUserStore) UpdateAvatar(_ context.Context, id uuid.UUID, avatarURL string) (*domain.User, error) {
	return m.update(id, func(u *domain.User) { u.AvatarURL = avatarURL })
}

func (m *MockUserStore) update(id uuid.UUID, apply func(*domain.User)) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	apply(u)
	u.UpdatedAt = time.Now().UTC()
	return copyUser(u), nil
}
