package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Anastasia-front/contacts-api/internal/api/shared"
	"github.com/Anastasia-front/contacts-api/internal/platform/logger"
	"github.com/Anastasia-front/contacts-api/internal/service/auth"
	"github.com/Anastasia-front/contacts-api/internal/store"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	users      store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, users store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// Authenticate validates the Bearer token from the Authorization header and
// adds the owning user to the request context.
//
// A token is accepted only while it is the user's current session token, so
// logging out invalidates it before it expires.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContextOrDefault(r.Context(), slog.Default())
		unauthorized := shared.NewHTTPError(http.StatusUnauthorized, shared.MsgNotAuthorized)

		header := r.Header.Get("Authorization")
		if header == "" {
			log.Debug("missing authorization header")
			shared.HandleError(w, r, auth.ErrMissingToken)
			return
		}

		token, ok := bearerToken(header)
		if !ok {
			log.Debug("malformed authorization header")
			shared.HandleError(w, r, unauthorized)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			log.Debug("token rejected", slog.String("reason", err.Error()))
			shared.HandleError(w, r, unauthorized)
			return
		}

		user, err := m.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				log.Debug("token subject does not exist", slog.String("user_id", claims.UserID.String()))
				shared.HandleError(w, r, unauthorized)
				return
			}
			shared.HandleError(w, r, err)
			return
		}

		if user.Token == "" || user.Token != token {
			log.Debug("token is not the current session", slog.String("user_id", user.ID.String()))
			shared.HandleError(w, r, unauthorized)
			return
		}

		ctx := shared.WithUser(r.Context(), user)
		ctx = logger.WithLogger(ctx, log.With(slog.String("user_id", user.ID.String())))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || token == "" || strings.Contains(token, " ") {
		return "", false
	}
	return token, true
}
