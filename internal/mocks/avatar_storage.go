package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/Anastasia-front/contacts-api/internal/platform/storage"
)

// MockAvatarStorage keeps uploads in memory and returns BaseURL + "/" + key.
type MockAvatarStorage struct {
	BaseURL string
	Err     error

	mu          sync.Mutex
	Files       map[string][]byte
	ContentType map[string]string
}

var _ storage.AvatarStorage = (*MockAvatarStorage)(nil)

// NewMockAvatarStorage creates an empty in-memory storage.
func NewMockAvatarStorage(baseURL string) *MockAvatarStorage {
	return &MockAvatarStorage{
		BaseURL:     baseURL,
		Files:       make(map[string][]byte),
		ContentType: make(map[string]string),
	}
}

// Save implements storage.AvatarStorage
func (m *MockAvatarStorage) Save(_ context.Context, key, contentType string, r io.Reader) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Files[key] = data
	m.ContentType[key] = contentType
	return m.BaseURL + "/" + key, nil
}
