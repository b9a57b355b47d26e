package repository

import (
	"context"

	"trustbites/internal/domain/entity"
)

// FeedRepository is the append-only activity log of a session.
type FeedRepository interface {
	// Append records an event at the end of the log.
	Append(ctx context.Context, event *entity.FeedEvent) error

	// ListRecent returns all events, most recent first.
	ListRecent(ctx context.Context) ([]*entity.FeedEvent, error)
}
