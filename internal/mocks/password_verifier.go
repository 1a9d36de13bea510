package mocks

import (
	"errors"
	"strings"
)

const hashPrefix = "hashed:"

// MockPasswordVerifier implements auth.PasswordVerifier and auth.PasswordHasher
// for testing. The default hash is the password with a "hashed:" prefix.
type MockPasswordVerifier struct {
	// ShouldSucceed forces every comparison to succeed
	ShouldSucceed bool

	// CompareFn allows for custom comparison logic in tests
	CompareFn func(hashedPassword, password string) error

	// HashFn allows for custom hashing logic in tests
	HashFn func(password string) (string, error)

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCallCount++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed {
		return nil
	}
	if strings.HasPrefix(hashedPassword, hashPrefix) && hashedPassword[len(hashPrefix):] == password {
		return nil
	}
	return errors.New("password mismatch")
}

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordVerifier) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return hashPrefix + password, nil
}
