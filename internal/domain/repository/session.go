package repository

import (
	"context"
	"time"

	"trustbites/internal/domain/entity"
	"trustbites/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session id is unknown or has expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionScope gives a use case exclusive access to one session and the stores it owns.
type SessionScope interface {
	// Session returns the mutable session state.
	Session() *entity.Session

	// AccountRepo returns the session's account store.
	AccountRepo() AccountRepository

	// PlaceRepo returns the session's place store.
	PlaceRepo() PlaceRepository

	// FeedRepo returns the session's feed log.
	FeedRepo() FeedRepository
}

// SessionManager owns every live session.
// Execute serializes all work on one session, so a use case sees and leaves it consistent.
type SessionManager interface {
	// Open creates a new empty session.
	Open(ctx context.Context) (*entity.Session, error)

	// Execute runs fn with exclusive access to the session.
	// Returns ErrSessionNotFound if the session does not exist.
	Execute(ctx context.Context, sessionID uuid.UUID, fn func(scope SessionScope) error) error

	// Close discards the session and everything it owns.
	Close(ctx context.Context, sessionID uuid.UUID) error

	// Sweep closes sessions not seen since the given time and reports how many were closed.
	Sweep(ctx context.Context, idleSince time.Time) (int, error)

	// Count returns the number of live sessions.
	Count() int
}
