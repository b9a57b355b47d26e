package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims of a session token.
type Claims struct {
	SessionID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService issues and validates the bearer tokens that identify a session.
type TokenService interface {
	// GenerateSessionToken creates a signed token for the session.
	GenerateSessionToken(sessionID uuid.UUID) (string, error)

	// ValidateSessionToken checks a token and returns its claims.
	ValidateSessionToken(tokenString string) (*Claims, error)
}
