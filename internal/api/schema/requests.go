package schema

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Email        string `json:"email"                  validate:"required,email_pattern"`
	Password     string `json:"password"               validate:"required,min=7"`
	Subscription string `json:"subscription,omitempty" validate:"omitempty,oneof=starter pro business"`
	Name         string `json:"name,omitempty"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email_pattern"`
	Password string `json:"password" validate:"required,min=7"`
}

// EmailRequest is the body of POST /api/users/verify.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email_pattern"`
}

// SubscriptionRequest is the body of PATCH /api/users.
type SubscriptionRequest struct {
	Subscription string `json:"subscription" validate:"required,oneof=starter pro business"`
}

// ContactRequest is the body of contact create and full update.
type ContactRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Favorite *bool  `json:"favorite,omitempty"`
}

// FavoriteRequest is the body of PATCH /api/contacts/{id}/favorite.
type FavoriteRequest struct {
	Favorite *bool `json:"favorite" validate:"required"`
}

// Schemas of every validated endpoint.
var (
	Register     = For[RegisterRequest]("register")
	Login        = For[LoginRequest]("login")
	Email        = For[EmailRequest]("email")
	Subscription = For[SubscriptionRequest]("subscription")
	Contact      = For[ContactRequest]("contact")
	Favorite     = For[FavoriteRequest]("favorite")
)
