package usecase

import (
	"context"

	"trustbites/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedUsecase reads the activity feed of a session.
type FeedUsecase interface {
	ListRecent(ctx context.Context, sessionID uuid.UUID) ([]*entity.FeedEvent, error)
}
