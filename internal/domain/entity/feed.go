package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedKind classifies an activity feed entry.
type FeedKind string

const (
	FeedKindJoin FeedKind = "join"
	FeedKindAdd  FeedKind = "add"
	FeedKindEdit FeedKind = "edit"
	FeedKindPin  FeedKind = "pin"
)

// FeedEvent is an append-only activity entry. It is never mutated once recorded.
type FeedEvent struct {
	ID        uuid.UUID
	Timestamp time.Time
	Kind      FeedKind
	Text      string
}
