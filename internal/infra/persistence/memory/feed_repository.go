package memory

import (
	"context"

	"trustbites/internal/domain/entity"
	"trustbites/internal/domain/repository"
)

// feedRepository implements repository.FeedRepository as an append-only slice.
type feedRepository struct {
	events []entity.FeedEvent
}

// NewFeedRepository creates an empty feed log.
func NewFeedRepository() repository.FeedRepository {
	return &feedRepository{}
}

func (repo *feedRepository) Append(_ context.Context, event *entity.FeedEvent) error {
	repo.events = append(repo.events, *event)

	return nil
}

// ListRecent walks the log backwards.
func (repo *feedRepository) ListRecent(_ context.Context) ([]*entity.FeedEvent, error) {
	result := make([]*entity.FeedEvent, 0, len(repo.events))
	for i := len(repo.events) - 1; i >= 0; i-- {
		event := repo.events[i]
		result = append(result, &event)
	}

	return result, nil
}
