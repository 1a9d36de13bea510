package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Anastasia-front/contacts-api/internal/api/schema"
	"github.com/Anastasia-front/contacts-api/internal/api/shared"
	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/Anastasia-front/contacts-api/internal/platform/logger"
	"github.com/Anastasia-front/contacts-api/internal/platform/mail"
	"github.com/Anastasia-front/contacts-api/internal/redact"
	"github.com/Anastasia-front/contacts-api/internal/service/auth"
	"github.com/Anastasia-front/contacts-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// Messages returned by the auth endpoints.
const (
	MsgWrongCredentials = "Email or password is wrong"
	MsgNotVerified      = "Email not verified"
	MsgAlreadyVerified  = "Verification has already been passed"
	MsgVerified         = "Verification Successful"
	MsgVerificationSent = "Verification email sent"
	MsgLogoutSuccess    = "Logout success"
	MsgMissingEmail     = "missing required field email"
)

// AuthOptions configures AuthHandler behavior.
type AuthOptions struct {
	// BaseURL is the public origin used in verification links.
	BaseURL string
	// RequireVerification rejects logins of unverified accounts.
	RequireVerification bool
}

// AuthHandler handles the account lifecycle endpoints: registration, login,
// logout, the current user and email verification.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	mailer           mail.Sender
	opts             AuthOptions
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	mailer mail.Sender,
	opts AuthOptions,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		mailer:           mailer,
		opts:             opts,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/users/register.
//
// The account starts unverified. A failed verification mail does not undo
// the registration; the user can ask for it again via ResendVerify.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req schema.RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return err
	}

	user, err := domain.NewUser(req.Email, req.Password, req.Name, domain.Subscription(req.Subscription))
	if err != nil {
		return err
	}

	user.HashedPassword, err = h.passwordHasher.Hash(req.Password)
	if err != nil {
		return err
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		return err
	}

	msg := mail.VerificationMessage(h.opts.BaseURL, user.Email, user.VerificationToken)
	if err := h.mailer.Send(r.Context(), msg); err != nil {
		log.Error("failed to send verification email",
			slog.String("user_id", user.ID.String()),
			slog.String("error", redact.Error(err)))
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{User: userSummary(user)})
	return nil
}

// Login handles POST /api/users/login. Unknown emails and wrong passwords
// get the same answer.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	wrongCredentials := shared.NewHTTPError(http.StatusUnauthorized, MsgWrongCredentials)

	var req schema.LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return err
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return wrongCredentials
		}
		return err
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		log.Debug("password mismatch", slog.String("user_id", user.ID.String()))
		return wrongCredentials
	}

	if h.opts.RequireVerification && !user.Verify {
		return shared.NewHTTPError(http.StatusUnauthorized, MsgNotVerified)
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		return err
	}

	if err := h.userStore.SetToken(r.Context(), user.ID, token); err != nil {
		return err
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token, User: userSummary(user)})
	return nil
}

// Logout handles POST /api/users/logout by clearing the session token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	if err := h.userStore.SetToken(r.Context(), user.ID, ""); err != nil {
		return err
	}

	shared.RespondWithMessage(w, r, http.StatusOK, MsgLogoutSuccess)
	return nil
}

// Current handles GET /api/users/current.
func (h *AuthHandler) Current(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CurrentUserResponse{
		Name:         user.Name,
		Email:        user.Email,
		Subscription: user.Subscription,
	})
	return nil
}

// VerifyEmail handles GET /api/users/verify/{verificationToken}.
// A token can be used once.
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) error {
	token := chi.URLParam(r, "verificationToken")

	user, err := h.userStore.GetByVerificationToken(r.Context(), token)
	if err != nil {
		return err
	}

	if err := h.userStore.MarkVerified(r.Context(), user.ID); err != nil {
		return err
	}

	shared.RespondWithMessage(w, r, http.StatusOK, MsgVerified)
	return nil
}

// ResendVerify handles POST /api/users/verify.
func (h *AuthHandler) ResendVerify(w http.ResponseWriter, r *http.Request) error {
	var req schema.EmailRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return err
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		return err
	}

	if user.Verify {
		return shared.NewHTTPError(http.StatusBadRequest, MsgAlreadyVerified)
	}

	msg := mail.VerificationMessage(h.opts.BaseURL, user.Email, user.VerificationToken)
	if err := h.mailer.Send(r.Context(), msg); err != nil {
		return err
	}

	shared.RespondWithMessage(w, r, http.StatusOK, MsgVerificationSent)
	return nil
}
