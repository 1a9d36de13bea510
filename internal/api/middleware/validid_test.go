package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidID(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.With(ValidID("id")).Get("/contacts/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		id         string
		wantStatus int
		wantMsg    string
	}{
		{name: "uuid", id: uuid.NewString(), wantStatus: http.StatusOK},
		{name: "short string", id: "123", wantStatus: http.StatusBadRequest, wantMsg: "123 is not valid id"},
		{name: "almost uuid", id: "6f1c2d9e-0000-0000-0000-00000000000", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/contacts/"+tt.id, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, messageOf(t, rr))
			}
		})
	}
}
