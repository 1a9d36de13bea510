package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinPasswordLength is the shortest plaintext password accepted at registration.
const MinPasswordLength = 7

// EmailPattern is the address shape accepted for user and contact emails.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Subscription is the billing tier of a user account.
type Subscription string

// Known subscription tiers.
const (
	SubscriptionStarter  Subscription = "starter"
	SubscriptionPro      Subscription = "pro"
	SubscriptionBusiness Subscription = "business"
)

// Subscriptions lists every valid tier in display order.
func Subscriptions() []Subscription {
	return []Subscription{SubscriptionStarter, SubscriptionPro, SubscriptionBusiness}
}

// Valid reports whether s is one of the known tiers.
func (s Subscription) Valid() bool {
	switch s {
	case SubscriptionStarter, SubscriptionPro, SubscriptionBusiness:
		return true
	}
	return false
}

// User is a registered account. The session token and verification token are
// credentials and never leave the service in JSON.
type User struct {
	ID                uuid.UUID    `json:"id"`
	Email             string       `json:"email"`
	Name              string       `json:"name"`
	Password          string       `json:"-"` // Plaintext, only set during registration
	HashedPassword    string       `json:"-"`
	Subscription      Subscription `json:"subscription"`
	Token             string       `json:"-"`
	AvatarURL         string       `json:"avatarURL"`
	Verify            bool         `json:"verify"`
	VerificationToken string       `json:"-"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

// NewUser creates an unverified user with a fresh verification token and a
// gravatar-based avatar. An empty subscription defaults to starter.
//
// The caller is responsible for hashing the password before storing the user.
func NewUser(email, password, name string, subscription Subscription) (*User, error) {
	if subscription == "" {
		subscription = SubscriptionStarter
	}

	now := time.Now().UTC()
	user := &User{
		ID:                uuid.New(),
		Email:             email,
		Name:              name,
		Password:          password,
		Subscription:      subscription,
		AvatarURL:         GravatarURL(email),
		VerificationToken: uuid.NewString(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	if u.Email == "" {
		return NewValidationError("email", "cannot be empty", ErrEmptyContent)
	}
	if !EmailPattern.MatchString(u.Email) {
		return NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return NewValidationError(
				"password",
				fmt.Sprintf("must be at least %d characters long", MinPasswordLength),
				ErrInvalidPassword,
			)
		}
	} else if u.HashedPassword == "" {
		// Persisted users carry only the hash.
		return NewValidationError("password", "cannot be empty", ErrInvalidPassword)
	}

	if !u.Subscription.Valid() {
		return NewValidationError("subscription", "is not a known tier", ErrInvalidSubscription)
	}

	return nil
}

// GravatarURL returns the identicon avatar for an email address.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?d=identicon&s=250"
}
