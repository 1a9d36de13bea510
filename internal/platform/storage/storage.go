// Package storage persists user avatar images and returns their public URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/Anastasia-front/contacts-api/internal/config"
)

// AvatarStorage stores avatar images.
type AvatarStorage interface {
	// Save writes the content read from r under key and returns the URL the
	// image is publicly reachable at.
	Save(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

// New builds the AvatarStorage selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (AvatarStorage, error) {
	switch cfg.Driver {
	case "local":
		return NewLocalStorage(cfg.LocalDir, cfg.PublicURL, logger)
	case "s3":
		return NewS3Storage(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Driver)
	}
}

// cleanKey rejects keys that would escape the storage root.
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + key)[1:]
	if cleaned == "" || cleaned != strings.TrimPrefix(key, "/") {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return cleaned, nil
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
