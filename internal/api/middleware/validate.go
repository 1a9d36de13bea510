package middleware

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Anastasia-front/contacts-api/internal/api/schema"
	"github.com/Anastasia-front/contacts-api/internal/api/shared"
	"github.com/Anastasia-front/contacts-api/internal/platform/logger"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

// ValidateBody checks the request body against s. Failures become a 400 whose
// message is chosen by policy. On success the body is handed to the next
// handler unchanged.
func ValidateBody(s *schema.Schema, policy schema.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContextOrDefault(r.Context(), slog.Default())

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					shared.HandleError(w, r, shared.NewHTTPError(http.StatusRequestEntityTooLarge))
					return
				}
				shared.HandleError(w, r, shared.NewHTTPError(http.StatusBadRequest, schema.ErrMalformedBody.Error()))
				return
			}

			failure, err := s.Validate(body)
			if err != nil {
				shared.HandleError(w, r, shared.NewHTTPError(http.StatusBadRequest, schema.ErrMalformedBody.Error()))
				return
			}
			if failure != nil {
				log.Debug("request body rejected",
					slog.String("schema", s.Name()),
					slog.String("field", failure.Field),
					slog.String("rule", failure.Message))
				shared.HandleError(w, r, shared.NewHTTPError(http.StatusBadRequest, policy(failure)))
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			r.ContentLength = int64(len(body))
			next.ServeHTTP(w, r)
		})
	}
}
