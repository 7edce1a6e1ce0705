package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTokenTTL is the fixed validity window of a session token.
const SessionTokenTTL = 30 * 24 * time.Hour

// Claims defines the claims carried by a session token. The subject is the user ID.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// Tokens are stateless; no server-side store backs them.
type TokenService interface {
	// Issue creates a signed session token for the given user.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature and expiry and returns the subject user ID.
	Verify(token string) (uuid.UUID, error)
}
