package store

import (
	"context"

	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/google/uuid"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. The plaintext password on the user must
	// already have been hashed into HashedPassword.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByVerificationToken retrieves the user holding an unconsumed
	// verification token. Returns ErrUserNotFound if nobody holds it.
	GetByVerificationToken(ctx context.Context, token string) (*domain.User, error)

	// SetToken stores the session token of a user; an empty token logs the user out.
	SetToken(ctx context.Context, id uuid.UUID, token string) error

	// MarkVerified sets the verification flag and clears the verification token.
	MarkVerified(ctx context.Context, id uuid.UUID) error

	// UpdateSubscription changes the tier and returns the updated user.
	UpdateSubscription(ctx context.Context, id uuid.UUID, subscription domain.Subscription) (*domain.User, error)

	// UpdateAvatar replaces the avatar URL and returns the updated user.
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (*domain.User, error)
}
