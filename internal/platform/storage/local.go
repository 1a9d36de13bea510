package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Anastasia-front/contacts-api/internal/platform/logger"
)

// LocalStorage writes avatars below a directory served by the HTTP server.
type LocalStorage struct {
	dir       string
	publicURL string
	logger    *slog.Logger
}

var _ AvatarStorage = (*LocalStorage)(nil)

// NewLocalStorage creates the directory if needed.
func NewLocalStorage(dir, publicURL string, log *slog.Logger) (*LocalStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("local storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create avatar directory: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	return &LocalStorage{
		dir:       dir,
		publicURL: publicURL,
		logger:    log.With(slog.String("component", "local_storage")),
	}, nil
}

// Dir returns the root directory files are written to.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save implements AvatarStorage. The file is written to a temporary name
// and renamed into place.
func (s *LocalStorage) Save(ctx context.Context, key, _ string, r io.Reader) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create avatar directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	written, err := io.Copy(tmp, r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("failed to write avatar: %w", err)
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("failed to move avatar into place: %w", err)
	}

	log.Debug("avatar stored on disk",
		slog.String("key", key),
		slog.Int64("bytes", written))
	return joinURL(s.publicURL, key), nil
}
