package impl

import (
	"context"
	"log/slog"

	"trustbites/internal/domain/entity"
	"trustbites/internal/domain/repository"
	"trustbites/internal/errors"
	"trustbites/internal/usecase"

	"github.com/google/uuid"
)

// feedService implements the FeedUsecase interface.
type feedService struct {
	sessions repository.SessionManager
	logger   *slog.Logger
}

// NewFeedService is the constructor for feedService.
func NewFeedService(sessions repository.SessionManager, logger *slog.Logger) usecase.FeedUsecase {
	return &feedService{
		sessions: sessions,
		logger:   logger,
	}
}

// ListRecent returns the whole feed, most recent first.
func (srv *feedService) ListRecent(ctx context.Context, sessionID uuid.UUID) ([]*entity.FeedEvent, error) {
	var events []*entity.FeedEvent
	err := inSession(ctx, srv.sessions, sessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}

		var err error
		events, err = scope.FeedRepo().ListRecent(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list feed")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}
