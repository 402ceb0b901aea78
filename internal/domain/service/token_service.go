package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by issued bearer tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a new signed, time-bounded token bound to the given user identity.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks the signature and expiry of a token string and resolves it
	// back to its claims. An expired, malformed, or tampered token fails.
	Verify(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured token lifetime.
	GetTokenDuration() time.Duration
}
