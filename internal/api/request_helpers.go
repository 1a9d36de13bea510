package api

import (
	"net/http"

	"github.com/Anastasia-front/contacts-api/internal/api/shared"
	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// currentUser returns the user placed in the context by the authentication
// middleware. Reaching a controller without one is a routing mistake, so it
// is reported as 401 rather than trusted.
func currentUser(r *http.Request) (*domain.User, error) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		return nil, shared.NewHTTPError(http.StatusUnauthorized, shared.MsgNotAuthorized)
	}
	return user, nil
}

// pathUUID extracts a UUID from the URL path parameters.
func pathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	raw := chi.URLParam(r, paramName)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, shared.NewHTTPError(http.StatusBadRequest, raw+" is not valid id")
	}
	return id, nil
}
