package api

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Anastasia-front/contacts-api/internal/api/schema"
	"github.com/Anastasia-front/contacts-api/internal/api/shared"
	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/Anastasia-front/contacts-api/internal/platform/logger"
	"github.com/Anastasia-front/contacts-api/internal/platform/storage"
	"github.com/Anastasia-front/contacts-api/internal/store"
	"github.com/google/uuid"
)

// AvatarField is the multipart form field carrying the avatar image.
const AvatarField = "avatar"

// multipartOverhead is allowed on top of the avatar size for headers and boundaries.
const multipartOverhead = 64 << 10

// Messages returned by the avatar endpoint.
const (
	MsgAvatarRequired = "avatar file is required"
	MsgAvatarNotImage = "avatar must be an image"
)

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// UserHandler handles profile changes of the authenticated user.
type UserHandler struct {
	userStore      store.UserStore
	avatars        storage.AvatarStorage
	maxAvatarBytes int64
	logger         *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	userStore store.UserStore,
	avatars storage.AvatarStorage,
	maxAvatarBytes int64,
	logger *slog.Logger,
) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &UserHandler{
		userStore:      userStore,
		avatars:        avatars,
		maxAvatarBytes: maxAvatarBytes,
		logger:         logger.With(slog.String("component", "user_handler")),
	}
}

// UpdateSubscription handles PATCH /api/users.
func (h *UserHandler) UpdateSubscription(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	var req schema.SubscriptionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return err
	}

	updated, err := h.userStore.UpdateSubscription(r.Context(), user.ID, domain.Subscription(req.Subscription))
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profileResponse(updated))
	return nil
}

// UpdateAvatar handles PATCH /api/users/avatar. The upload must sniff as an
// image and fit in the configured size.
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, err := currentUser(r)
	if err != nil {
		return err
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxAvatarBytes+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxAvatarBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return shared.NewHTTPError(http.StatusRequestEntityTooLarge)
		}
		return shared.NewHTTPError(http.StatusBadRequest, MsgAvatarRequired)
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warn("failed to remove multipart temp files", slog.String("error", err.Error()))
		}
	}()

	file, header, err := r.FormFile(AvatarField)
	if err != nil {
		return shared.NewHTTPError(http.StatusBadRequest, MsgAvatarRequired)
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(file, h.maxAvatarBytes+1))
	if err != nil {
		return err
	}
	if int64(len(data)) > h.maxAvatarBytes {
		return shared.NewHTTPError(http.StatusRequestEntityTooLarge)
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		log.Debug("rejected avatar upload", slog.String("content_type", contentType))
		return shared.NewHTTPError(http.StatusBadRequest, MsgAvatarNotImage)
	}

	key := user.ID.String() + "/" + uuid.NewString() + avatarExtension(contentType, header.Filename)
	url, err := h.avatars.Save(r.Context(), key, contentType, bytes.NewReader(data))
	if err != nil {
		return err
	}

	updated, err := h.userStore.UpdateAvatar(r.Context(), user.ID, url)
	if err != nil {
		return err
	}

	log.Info("avatar updated",
		slog.String("user_id", user.ID.String()),
		slog.Int("bytes", len(data)))
	shared.RespondWithJSON(w, r, http.StatusOK, AvatarResponse{AvatarURL: updated.AvatarURL})
	return nil
}

// avatarExtension prefers the sniffed type over the client's file name.
func avatarExtension(contentType, filename string) string {
	if ext, ok := imageExtensions[contentType]; ok {
		return ext
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 1 && len(ext) <= 5 {
		return ext
	}
	return ""
}
