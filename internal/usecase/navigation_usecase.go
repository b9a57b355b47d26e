package usecase

import (
	"context"

	"trustbites/internal/domain/entity"

	"github.com/google/uuid"
)

// NavigationState is what the client needs to decide which page to show.
type NavigationState struct {
	SignedIn     bool
	Identity     entity.Identity
	Page         entity.Page
	EditTarget   *uuid.UUID
	LastMapClick *entity.MapClick
}

// NavigationUsecase drives the page state machine of a session.
type NavigationUsecase interface {
	// Current is available to signed-out sessions and reports the landing page for them.
	Current(ctx context.Context, sessionID uuid.UUID) (*NavigationState, error)
	Navigate(ctx context.Context, sessionID uuid.UUID, page string) (*NavigationState, error)
	BeginEdit(ctx context.Context, sessionID, placeID uuid.UUID) (*NavigationState, error)
	CancelEdit(ctx context.Context, sessionID uuid.UUID) (*NavigationState, error)
}
