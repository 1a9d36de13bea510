package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Anastasia-front/contacts-api/internal/api/schema"
	"github.com/Anastasia-front/contacts-api/internal/api/shared"
	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/Anastasia-front/contacts-api/internal/platform/logger"
	"github.com/Anastasia-front/contacts-api/internal/store"
)

// Messages of the contact endpoints.
const (
	MsgContactDeleted  = "Contact Deleted"
	MsgMissingFavorite = "missing field favorite"
)

// ContactHandler handles the contact endpoints. Every operation is scoped to
// the authenticated user.
type ContactHandler struct {
	contactStore store.ContactStore
	logger       *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactStore store.ContactStore, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ContactHandler{
		contactStore: contactStore,
		logger:       logger.With(slog.String("component", "contact_handler")),
	}
}

// ListContacts handles GET /api/contacts?page=&limit=&favorite=.
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	query, err := schema.ParseListQuery(r.URL.Query())
	if err != nil {
		var qe *schema.QueryError
		if errors.As(err, &qe) {
			return shared.NewHTTPError(http.StatusBadRequest, qe.Message)
		}
		return err
	}

	contacts, err := h.contactStore.List(r.Context(), user.ID, store.ContactFilter{
		Page:     query.Page,
		Limit:    query.Limit,
		Favorite: query.Favorite,
	})
	if err != nil {
		return err
	}

	items := make([]ContactListItem, 0, len(contacts))
	for _, c := range contacts {
		items = append(items, contactListItem(c))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
	return nil
}

// GetContact handles GET /api/contacts/{id}.
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		return err
	}

	contact, err := h.contactStore.GetByID(r.Context(), user.ID, id)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contact)
	return nil
}

// AddContact handles POST /api/contacts. The owner is always the caller.
func (h *ContactHandler) AddContact(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, err := currentUser(r)
	if err != nil {
		return err
	}

	var req schema.ContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return err
	}

	favorite := req.Favorite != nil && *req.Favorite
	contact, err := domain.NewContact(user.ID, req.Name, req.Email, req.Phone, favorite)
	if err != nil {
		return err
	}

	if err := h.contactStore.Create(r.Context(), contact); err != nil {
		return err
	}

	log.Debug("contact added", slog.String("contact_id", contact.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, contact)
	return nil
}

// UpdateContact handles PUT /api/contacts/{id}.
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		return err
	}

	var req schema.ContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return err
	}

	contact, err := h.contactStore.Update(r.Context(), user.ID, id, store.ContactFields{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Favorite: req.Favorite,
	})
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contact)
	return nil
}

// UpdateFavorite handles PATCH /api/contacts/{id}/favorite.
func (h *ContactHandler) UpdateFavorite(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		return err
	}

	var req struct {
		Favorite bool `json:"favorite"`
	}
	if err := shared.DecodeJSON(r, &req); err != nil {
		return err
	}

	contact, err := h.contactStore.UpdateFavorite(r.Context(), user.ID, id, req.Favorite)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contact)
	return nil
}

// RemoveContact handles DELETE /api/contacts/{id}.
func (h *ContactHandler) RemoveContact(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		return err
	}

	if err := h.contactStore.Delete(r.Context(), user.ID, id); err != nil {
		return err
	}

	shared.RespondWithMessage(w, r, http.StatusOK, MsgContactDeleted)
	return nil
}
