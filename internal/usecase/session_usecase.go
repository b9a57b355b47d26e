package usecase

import (
	"context"

	"trustbites/internal/domain/entity"

	"github.com/google/uuid"
)

// OpenSessionOutput is a new session and the token that addresses it.
type OpenSessionOutput struct {
	Session *entity.Session
	Token   string
}

// SessionUsecase manages the lifecycle of sessions.
type SessionUsecase interface {
	Open(ctx context.Context) (*OpenSessionOutput, error)
	Close(ctx context.Context, sessionID uuid.UUID) error

	// Resolve validates a session token and returns the live session's navigation state.
	Resolve(ctx context.Context, token string) (uuid.UUID, *NavigationState, error)
}
