package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an address-book entry owned by exactly one user.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	Owner     uuid.UUID `json:"owner"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewContact creates a contact for owner. The owner is fixed for the lifetime
// of the contact.
func NewContact(owner uuid.UUID, name, email, phone string, favorite bool) (*Contact, error) {
	now := time.Now().UTC()
	contact := &Contact{
		ID:        uuid.New(),
		Owner:     owner,
		Name:      name,
		Email:     email,
		Phone:     phone,
		Favorite:  favorite,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

// Validate checks if the Contact has valid data.
func (c *Contact) Validate() error {
	if c.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if c.Owner == uuid.Nil {
		return NewValidationError("owner", "cannot be empty", ErrInvalidID)
	}
	if c.Name == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyContent)
	}
	if c.Email == "" {
		return NewValidationError("email", "cannot be empty", ErrEmptyContent)
	}
	if c.Phone == "" {
		return NewValidationError("phone", "cannot be empty", ErrEmptyContent)
	}
	return nil
}
