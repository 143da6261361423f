package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for email carrying the
	// given role names. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, email string, roles []string) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns the claims if the token is valid, or an error if validation fails
	// (expired, invalid signature, missing email, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of a token.
type Claims struct {
	// Email identifies the caller.
	Email string `json:"email"`

	// Roles lists the role names granted by the issuer, e.g. "ROLE_USER".
	Roles []string `json:"roles,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
