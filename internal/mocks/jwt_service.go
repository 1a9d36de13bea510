package mocks

import (
	"context"

	"github.com/Anastasia-front/contacts-api/internal/service/auth"
	"github.com/google/uuid"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// NewUserIDJWTService returns a MockJWTService whose tokens are
// "token-<user id>-<nonce>" and validate back to that user, so tests can drive
// the full login/authenticate flow without signing keys.
func NewUserIDJWTService() *MockJWTService {
	return &MockJWTService{
		GenerateTokenFn: func(_ context.Context, userID uuid.UUID) (string, error) {
			return "token-" + userID.String() + "-" + uuid.NewString()[:8], nil
		},
		ValidateTokenFn: func(_ context.Context, tokenString string) (*auth.Claims, error) {
			const prefix = "token-"
			if len(tokenString) < len(prefix)+36 || tokenString[:len(prefix)] != prefix {
				return nil, auth.ErrInvalidToken
			}
			id, err := uuid.Parse(tokenString[len(prefix) : len(prefix)+36])
			if err != nil {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{UserID: id, Subject: id.String()}, nil
		},
	}
}
