package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Anastasia-front/contacts-api/internal/api/shared"
	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/Anastasia-front/contacts-api/internal/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactFixture struct {
	users    *mocks.MockUserStore
	contacts *mocks.MockContactStore
	handler  *ContactHandler
	owner    *domain.User
	other    *domain.User
}

func newContactFixture() *contactFixture {
	users := mocks.NewMockUserStore()
	contacts := mocks.NewMockContactStore(users)
	owner := newTestUser("owner@example.com")
	other := newTestUser("other@example.com")
	users.Put(owner)
	users.Put(other)

	return &contactFixture{
		users:    users,
		contacts: contacts,
		handler:  NewContactHandler(contacts, nil),
		owner:    owner,
		other:    other,
	}
}

func (f *contactFixture) add(t *testing.T, owner *domain.User, name string, favorite bool) *domain.Contact {
	t.Helper()
	c, err := domain.NewContact(owner.ID, name, name+"@example.com", "555-0100", favorite)
	require.NoError(t, err)
	require.NoError(t, f.contacts.Create(context.Background(), c))
	return c
}

func (f *contactFixture) request(t *testing.T, method, target string, user *domain.User, id string, payload interface{}) *http.Request {
	t.Helper()
	req := asUser(jsonRequest(t, method, target, payload), user)
	if id != "" {
		req = withURLParams(req, map[string]string{"id": id})
	}
	return req
}

func TestAddContact(t *testing.T) {
	t.Parallel()

	f := newContactFixture()

	rr := serve(f.handler.AddContact, f.request(t, http.MethodPost, "/api/contacts", f.owner, "", map[string]interface{}{
		"name":  "Alice",
		"email": "alice@example.com",
		"phone": "555-0101",
	}))

	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeBody[domain.Contact](t, rr)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, f.owner.ID, created.Owner)
	assert.Equal(t, "Alice", created.Name)
	assert.False(t, created.Favorite)

	// Round trip through GetContact returns the same record.
	rr = serve(f.handler.GetContact, f.request(t, http.MethodGet, "/api/contacts/"+created.ID.String(),
		f.owner, created.ID.String(), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	fetched := decodeBody[domain.Contact](t, rr)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Email, fetched.Email)
	assert.Equal(t, f.owner.ID, fetched.Owner)
}

func TestAddContact_Favorite(t *testing.T) {
	t.Parallel()

	f := newContactFixture()

	rr := serve(f.handler.AddContact, f.request(t, http.MethodPost, "/api/contacts", f.owner, "", map[string]interface{}{
		"name":     "Bob",
		"email":    "bob@example.com",
		"phone":    "555-0102",
		"favorite": true,
	}))

	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeBody[domain.Contact](t, rr)
	assert.Equal(t, f.owner.ID, created.Owner)
	assert.True(t, created.Favorite)
}

func TestGetContact_Ownership(t *testing.T) {
	t.Parallel()

	f := newContactFixture()
	theirs := f.add(t, f.other, "Carol", false)

	rr := serve(f.handler.GetContact, f.request(t, http.MethodGet, "/", f.owner, theirs.ID.String(), nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, shared.MsgNotFound, messageOf(t, rr))
}

func TestListContacts(t *testing.T) {
	t.Parallel()

	f := newContactFixture()
	for i := 0; i < 9; i++ {
		f.add(t, f.owner, fmt.Sprintf("c%d", i), i%3 == 0)
	}
	f.add(t, f.other, "foreign", true)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantNames  []string
		wantMsg    string
	}{
		{
			name:       "default page",
			query:      "",
			wantStatus: http.StatusOK,
			wantNames:  []string{"c0", "c1", "c2", "c3", "c4", "c5", "c6"},
		},
		{
			name:       "second page",
			query:      "?page=2",
			wantStatus: http.StatusOK,
			wantNames:  []string{"c7", "c8"},
		},
		{
			name:       "favorites only",
			query:      "?favorite=true",
			wantStatus: http.StatusOK,
			wantNames:  []string{"c0", "c3", "c6"},
		},
		{
			name:       "custom limit",
			query:      "?limit=2&page=3",
			wantStatus: http.StatusOK,
			wantNames:  []string{"c4", "c5"},
		},
		{
			name:       "past the end",
			query:      "?page=10",
			wantStatus: http.StatusOK,
			wantNames:  []string{},
		},
		{
			name:       "malformed page",
			query:      "?page=first",
			wantStatus: http.StatusBadRequest,
			wantMsg:    `"page" must be a number`,
		},
		{
			name:       "malformed favorite",
			query:      "?favorite=maybe",
			wantStatus: http.StatusBadRequest,
			wantMsg:    `"favorite" must be a boolean`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := serve(f.handler.ListContacts, f.request(t, http.MethodGet, "/api/contacts"+tt.query, f.owner, "", nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantMsg, messageOf(t, rr))
				return
			}

			items := decodeBody[[]ContactListItem](t, rr)
			names := make([]string, 0, len(items))
			for _, item := range items {
				names = append(names, item.Name)
				assert.Equal(t, f.owner.ID, item.Owner.ID)
				assert.Equal(t, f.owner.Email, item.Owner.Email)
				assert.Equal(t, domain.SubscriptionStarter, item.Owner.Subscription)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.NotContains(t, rr.Body.String(), "createdAt")
			assert.NotContains(t, rr.Body.String(), "updatedAt")
		})
	}
}

func TestUpdateContact(t *testing.T) {
	t.Parallel()

	f := newContactFixture()
	mine := f.add(t, f.owner, "Dave", true)
	theirs := f.add(t, f.other, "Eve", false)

	payload := map[string]interface{}{"name": "David", "email": "david@example.com", "phone": "555-0199"}

	rr := serve(f.handler.UpdateContact, f.request(t, http.MethodPut, "/", f.owner, mine.ID.String(), payload))
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decodeBody[domain.Contact](t, rr)
	assert.Equal(t, "David", updated.Name)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.True(t, updated.Favorite, "favorite is kept when omitted")
	assert.Equal(t, f.owner.ID, updated.Owner)

	rr = serve(f.handler.UpdateContact, f.request(t, http.MethodPut, "/", f.owner, theirs.ID.String(), payload))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	stillTheirs, err := f.contacts.GetByID(context.Background(), f.other.ID, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eve", stillTheirs.Name)
}

func TestUpdateFavorite(t *testing.T) {
	t.Parallel()

	f := newContactFixture()
	mine := f.add(t, f.owner, "Frank", false)

	for i := 0; i < 2; i++ {
		rr := serve(f.handler.UpdateFavorite, f.request(t, http.MethodPatch, "/", f.owner, mine.ID.String(),
			map[string]bool{"favorite": true}))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decodeBody[domain.Contact](t, rr).Favorite)
	}

	rr := serve(f.handler.UpdateFavorite, f.request(t, http.MethodPatch, "/", f.owner, mine.ID.String(),
		map[string]bool{"favorite": false}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decodeBody[domain.Contact](t, rr).Favorite)
}

func TestRemoveContact(t *testing.T) {
	t.Parallel()

	f := newContactFixture()
	mine := f.add(t, f.owner, "Grace", false)
	theirs := f.add(t, f.other, "Heidi", false)

	rr := serve(f.handler.RemoveContact, f.request(t, http.MethodDelete, "/", f.owner, theirs.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(f.handler.RemoveContact, f.request(t, http.MethodDelete, "/", f.owner, mine.ID.String(), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, MsgContactDeleted, messageOf(t, rr))

	rr = serve(f.handler.RemoveContact, f.request(t, http.MethodDelete, "/", f.owner, mine.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 1, f.contacts.Len())
}

func TestContactHandler_BadPathID(t *testing.T) {
	t.Parallel()

	f := newContactFixture()
	rr := serve(f.handler.GetContact, f.request(t, http.MethodGet, "/", f.owner, "42", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "42 is not valid id", messageOf(t, rr))
}

func TestContactHandler_StoreFailure(t *testing.T) {
	t.Parallel()

	f := newContactFixture()
	f.contacts.Err = errors.New("pq: relation \"contacts\" does not exist")

	rr := serve(f.handler.ListContacts, f.request(t, http.MethodGet, "/api/contacts", f.owner, "", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, shared.MsgServerError, messageOf(t, rr))
	assert.NotContains(t, rr.Body.String(), "relation")
}
