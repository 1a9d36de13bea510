package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		schema    *Schema
		body      string
		wantMsg   string
		wantField string
	}{
		{
			name:   "valid register",
			schema: Register,
			body:   `{"email":"ann@example.com","password":"secret12"}`,
		},
		{
			name:   "valid register with subscription and name",
			schema: Register,
			body:   `{"email":"ann@example.com","password":"secret12","subscription":"pro","name":"Ann"}`,
		},
		{
			name:      "missing email",
			schema:    Register,
			body:      `{"password":"secret12"}`,
			wantMsg:   `"email" is required`,
			wantField: "email",
		},
		{
			name:      "empty body reports first field",
			schema:    Login,
			body:      ``,
			wantMsg:   `"email" is required`,
			wantField: "email",
		},
		{
			name:      "empty email",
			schema:    Login,
			body:      `{"email":"","password":"secret12"}`,
			wantMsg:   `"email" is not allowed to be empty`,
			wantField: "email",
		},
		{
			name:      "email pattern",
			schema:    Login,
			body:      `{"email":"ann","password":"secret12"}`,
			wantMsg:   `"email" with value "ann" fails to match the required pattern: /^[^\s@]+@[^\s@]+\.[^\s@]+$/`,
			wantField: "email",
		},
		{
			name:      "short password",
			schema:    Login,
			body:      `{"email":"ann@example.com","password":"123"}`,
			wantMsg:   `"password" length must be at least 7 characters long`,
			wantField: "password",
		},
		{
			name:      "earlier field reported first",
			schema:    Login,
			body:      `{"password":"1","email":"bad"}`,
			wantMsg:   `"email" with value "bad" fails to match the required pattern: /^[^\s@]+@[^\s@]+\.[^\s@]+$/`,
			wantField: "email",
		},
		{
			name:      "subscription not in set",
			schema:    Subscription,
			body:      `{"subscription":"gold"}`,
			wantMsg:   `"subscription" must be one of [starter, pro, business]`,
			wantField: "subscription",
		},
		{
			name:      "subscription wrong type",
			schema:    Subscription,
			body:      `{"subscription":1}`,
			wantMsg:   `"subscription" must be a string`,
			wantField: "subscription",
		},
		{
			name:      "unknown key",
			schema:    Email,
			body:      `{"email":"ann@example.com","foo":1}`,
			wantMsg:   `"foo" is not allowed`,
			wantField: "foo",
		},
		{
			name:      "null string",
			schema:    Contact,
			body:      `{"name":null,"email":"a@x.com","phone":"1"}`,
			wantMsg:   `"name" must be a string`,
			wantField: "name",
		},
		{
			name:      "favorite not boolean",
			schema:    Favorite,
			body:      `{"favorite":"yes"}`,
			wantMsg:   `"favorite" must be a boolean`,
			wantField: "favorite",
		},
		{
			name:   "favorite false is present",
			schema: Favorite,
			body:   `{"favorite":false}`,
		},
		{
			name:      "favorite missing",
			schema:    Favorite,
			body:      `{}`,
			wantMsg:   `"favorite" is required`,
			wantField: "favorite",
		},
		{
			name:    "array body",
			schema:  Contact,
			body:    `[1,2]`,
			wantMsg: `"value" must be of type object`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			failure, err := tt.schema.Validate([]byte(tt.body))
			require.NoError(t, err)

			if tt.wantMsg == "" {
				assert.Nil(t, failure)
				return
			}
			require.NotNil(t, failure)
			assert.Equal(t, tt.wantMsg, failure.Message)
			assert.Equal(t, tt.wantField, failure.Field)
			assert.NotNil(t, failure.Original)
		})
	}
}

func TestSchemaValidate_MalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := Contact.Validate([]byte(`{"name":`))
	assert.ErrorIs(t, err, ErrMalformedBody)
}

func TestSchemaValidate_OriginalBody(t *testing.T) {
	t.Parallel()

	failure, err := Contact.Validate([]byte(`{"name":5,"email":"a@x.com"}`))
	require.NoError(t, err)
	require.NotNil(t, failure)

	assert.Equal(t, float64(5), failure.Original["name"])
	assert.Equal(t, "a@x.com", failure.Original["email"])
	_, hasPhone := failure.Original["phone"]
	assert.False(t, hasPhone)
}

func TestFor_UnsupportedField(t *testing.T) {
	t.Parallel()

	type bad struct {
		Count int `json:"count"`
	}
	assert.Panics(t, func() { For[bad]("bad") })
}
