// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"trustbites/config"
	"trustbites/internal/domain/service"
	"trustbites/internal/errors"
)

const sessionTokenType = "session"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
	now    func() time.Time
}

// sessionClaims is the wire form of a session token.
type sessionClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session token secret must be provided")
	}

	ttl := 24 * time.Hour
	if cfg.Session != nil && cfg.Session.TokenTTL > 0 {
		ttl = cfg.Session.TokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Session,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateSessionToken signs a token whose subject is the session id.
func (s *jwtService) GenerateSessionToken(sessionID uuid.UUID) (string, error) {
	now := s.now()
	claims := sessionClaims{
		Type: sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateSessionToken verifies signature, expiry and type, and extracts the session id.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.Claims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("session token is not valid")
	}
	if claims.Type != sessionTokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	sessionID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session id in token")
	}

	return &service.Claims{
		SessionID:        sessionID,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
