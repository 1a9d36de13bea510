package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Anastasia-front/contacts-api/internal/api/shared"
	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestUser builds a verified user whose password is "password1" under
// the mock hasher.
func newTestUser(email string) *domain.User {
	return &domain.User{
		ID:                uuid.New(),
		Email:             email,
		Name:              "Test User",
		HashedPassword:    "hashed:password1",
		Subscription:      domain.SubscriptionStarter,
		Verify:            true,
		VerificationToken: "",
	}
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser places user in the request context as the auth middleware would.
func asUser(req *http.Request, user *domain.User) *http.Request {
	return req.WithContext(shared.WithUser(req.Context(), user))
}

// withURLParams attaches chi route parameters to req.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func serve(h shared.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	shared.Wrap(h).ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func messageOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[shared.MessageResponse](t, rr).Message
}
