package service

// Metrics records operational counters of the service.
type Metrics interface {
	// GeocodeLookup counts a lookup by direction ("forward" or "reverse") and outcome.
	GeocodeLookup(direction, outcome string)

	// FeedEvent counts an appended feed event by kind.
	FeedEvent(kind string)

	// SessionOpened counts a new session.
	SessionOpened()

	// SessionsClosed counts sessions closed by reason ("logout" or "expired").
	SessionsClosed(reason string, n int)

	// SetLiveSessions reports the number of sessions in memory.
	SetLiveSessions(n int)
}
