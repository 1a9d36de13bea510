package middleware

import (
	"fmt"
	"net/http"

	"github.com/Anastasia-front/contacts-api/internal/api/shared"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ValidID rejects requests whose path parameter is not a well-formed UUID
// with 400, before any lookup is attempted.
func ValidID(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, param)
			if _, err := uuid.Parse(id); err != nil {
				shared.HandleError(w, r,
					shared.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is not valid id", id)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
