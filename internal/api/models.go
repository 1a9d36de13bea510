package api

import (
	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/Anastasia-front/contacts-api/internal/store"
	"github.com/google/uuid"
)

// UserSummary is the public projection of a user returned by register and login.
type UserSummary struct {
	Email        string              `json:"email"`
	Subscription domain.Subscription `json:"subscription"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	User UserSummary `json:"user"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// CurrentUserResponse is the body of GET /api/users/current.
type CurrentUserResponse struct {
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Subscription domain.Subscription `json:"subscription"`
}

// ProfileResponse is a user as returned after a profile change.
type ProfileResponse struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Subscription domain.Subscription `json:"subscription"`
	AvatarURL    string              `json:"avatarURL"`
	Verify       bool                `json:"verify"`
}

// AvatarResponse is the body of a successful avatar upload.
type AvatarResponse struct {
	AvatarURL string `json:"avatarURL"`
}

// ContactListItem is one entry of the contact listing. Timestamps are left
// out and the owner is expanded.
type ContactListItem struct {
	ID       uuid.UUID          `json:"id"`
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Phone    string             `json:"phone"`
	Favorite bool               `json:"favorite"`
	Owner    store.OwnerSummary `json:"owner"`
}

func userSummary(u *domain.User) UserSummary {
	return UserSummary{Email: u.Email, Subscription: u.Subscription}
}

func profileResponse(u *domain.User) ProfileResponse {
	return ProfileResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Subscription: u.Subscription,
		AvatarURL:    u.AvatarURL,
		Verify:       u.Verify,
	}
}

func contactListItem(c store.ContactWithOwner) ContactListItem {
	return ContactListItem{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Favorite: c.Favorite,
		Owner:    c.OwnerInfo,
	}
}
