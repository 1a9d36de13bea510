package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/Anastasia-front/contacts-api/internal/store"
	"github.com/google/uuid"
)

// MockContactStore implements store.ContactStore in memory for testing.
// Contacts owned by another user are reported as store.ErrContactNotFound.
type MockContactStore struct {
	// Users resolves owner summaries for List; nil leaves them zero.
	Users *MockUserStore

	// Err, when set, is returned by every method
	Err error

	mu       sync.Mutex
	seq      int
	contacts map[uuid.UUID]*storedContact
}

type storedContact struct {
	domain.Contact
	seq int
}

var _ store.ContactStore = (*MockContactStore)(nil)

// NewMockContactStore creates an empty store that resolves owners from users.
func NewMockContactStore(users *MockUserStore) *MockContactStore {
	return &MockContactStore{Users: users, contacts: make(map[uuid.UUID]*storedContact)}
}

// Create implements the ContactStore interface
func (m *MockContactStore) Create(_ context.Context, contact *domain.Contact) error {
	if m.Err != nil {
		return m.Err
	}
	if err := contact.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	m.contacts[contact.ID] = &storedContact{Contact: *contact, seq: m.seq}
	return nil
}

func (m *MockContactStore) owned(owner, id uuid.UUID) (*storedContact, error) {
	c, ok := m.contacts[id]
	if !ok || c.Owner != owner {
		return nil, store.ErrContactNotFound
	}
	return c, nil
}

// GetByID implements the ContactStore interface
func (m *MockContactStore) GetByID(_ context.Context, owner, id uuid.UUID) (*domain.Contact, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.owned(owner, id)
	if err != nil {
		return nil, err
	}
	contact := c.Contact
	return &contact, nil
}

// List implements the ContactStore interface
func (m *MockContactStore) List(
	ctx context.Context,
	owner uuid.UUID,
	filter store.ContactFilter,
) ([]store.ContactWithOwner, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	var matched []*storedContact
	for _, c := range m.contacts {
		if c.Owner != owner {
			continue
		}
		if filter.Favorite != nil && c.Favorite != *filter.Favorite {
			continue
		}
		matched = append(matched, c)
	}
	m.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })

	var summary store.OwnerSummary
	if m.Users != nil {
		if u, err := m.Users.GetByID(ctx, owner); err == nil {
			summary = store.OwnerSummary{ID: u.ID, Email: u.Email, Subscription: u.Subscription}
		}
	}

	result := make([]store.ContactWithOwner, 0, filter.Limit)
	for i := filter.Offset(); i < len(matched) && len(result) < filter.Limit; i++ {
		result = append(result, store.ContactWithOwner{Contact: matched[i].Contact, OwnerInfo: summary})
	}
	return result, nil
}

// Update implements the ContactStore interface
func (m *MockContactStore) Update(
	_ context.Context,
	owner, id uuid.UUID,
	fields store.ContactFields,
) (*domain.Contact, error) {
	return m.update(owner, id, func(c *domain.Contact) {
		c.Name = fields.Name
		c.Email = fields.Email
		c.Phone = fields.Phone
		if fields.Favorite != nil {
			c.Favorite = *fields.Favorite
		}
	})
}

// UpdateFavorite implements the ContactStore interface
func (m *MockContactStore) UpdateFavorite(_ context.Context, owner, id uuid.UUID, favorite bool) (*domain.Contact, error) {
	return m.update(owner, id, func(c *domain.Contact) { c.Favorite = favorite })
}

func (m *MockContactStore) update(owner, id uuid.UUID, apply func(*domain.Contact)) (*domain.Contact, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.owned(owner, id)
	if err != nil {
		return nil, err
	}
	apply(&c.Contact)
	c.UpdatedAt = time.Now().UTC()
	contact := c.Contact
	return &contact, nil
}

// Delete implements the ContactStore interface
func (m *MockContactStore) Delete(_ context.Context, owner, id uuid.UUID) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.owned(owner, id); err != nil {
		return err
	}
	delete(m.contacts, id)
	return nil
}

// Len returns the number of stored contacts across all owners.
func (m *MockContactStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.contacts)
}
