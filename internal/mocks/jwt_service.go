package mocks

import (
	"context"

	"github.com/ucsb-cs156/campus-records-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, email string, roles []string) (string, error)

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
func (m *MockJWTService) GenerateToken(ctx context.Context, email string, roles []string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, email, roles)
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

// TokenClaims returns a MockJWTService that accepts exactly the tokens in
// claims and rejects every other token with auth.ErrInvalidToken.
func TokenClaims(claims map[string]*auth.Claims) *MockJWTService {
	return &MockJWTService{
		ValidateTokenFn: func(_ context.Context, tokenString string) (*auth.Claims, error) {
			if c, ok := claims[tokenString]; ok {
				return c, nil
			}
			return nil, auth.ErrInvalidToken
		},
	}
}
