package service

import (
	"context"

	"trustbites/internal/domain/entity"
)

// UnknownCity is returned by reverse lookups that could not name a settlement.
const UnknownCity = "Unknown city"

// Geocoder resolves free text to coordinates and coordinates to a city name.
// Implementations never fail: an unreachable or empty lookup degrades to a miss.
type Geocoder interface {
	// Forward returns the first match for the query. ok is false when nothing was found.
	Forward(ctx context.Context, query string) (coords entity.Coordinates, ok bool)

	// Reverse returns the city at the position, or UnknownCity.
	Reverse(ctx context.Context, lat, lon float64) string
}
