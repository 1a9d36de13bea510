package store

import (
	"context"

	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/google/uuid"
)

// ContactFilter selects a page of a user's contacts.
type ContactFilter struct {
	Page     int   // 1-based
	Limit    int   // page size
	Favorite *bool // nil means no filter
}

// Offset returns the number of rows to skip for the filter's page.
func (f ContactFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// ContactFields holds the user-editable fields of a contact.
type ContactFields struct {
	Name     string
	Email    string
	Phone    string
	Favorite *bool // nil leaves the stored value untouched
}

// OwnerSummary is the owner projection attached to listed contacts.
type OwnerSummary struct {
	ID           uuid.UUID           `json:"id"`
	Email        string              `json:"email"`
	Subscription domain.Subscription `json:"subscription"`
}

// ContactWithOwner is a contact joined with its owner's summary.
type ContactWithOwner struct {
	domain.Contact
	OwnerInfo OwnerSummary
}

// ContactStore defines the interface for contact data persistence.
// Every read and write is scoped to an owner: a contact owned by someone
// else is reported as ErrContactNotFound.
type ContactStore interface {
	// Create saves a new contact.
	Create(ctx context.Context, contact *domain.Contact) error

	// GetByID retrieves one of owner's contacts.
	GetByID(ctx context.Context, owner, id uuid.UUID) (*domain.Contact, error)

	// List returns a page of owner's contacts, oldest first.
	List(ctx context.Context, owner uuid.UUID, filter ContactFilter) ([]ContactWithOwner, error)

	// Update replaces the editable fields and returns the updated contact.
	Update(ctx context.Context, owner, id uuid.UUID, fields ContactFields) (*domain.Contact, error)

	// UpdateFavorite sets the favorite flag and returns the updated contact.
	UpdateFavorite(ctx context.Context, owner, id uuid.UUID, favorite bool) (*domain.Contact, error)

	// Delete removes one of owner's contacts.
	Delete(ctx context.Context, owner, id uuid.UUID) error
}
