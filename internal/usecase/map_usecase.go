package usecase

import (
	"context"

	"trustbites/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Pin is a located place shown on the map.
type Pin struct {
	PlaceID uuid.UUID
	Name    string
	City    string
	Lat     float64
	Lon     float64
}

// MapView is the map page: where to center it, the selected point and the pins.
type MapView struct {
	Center   entity.Coordinates
	Selected *entity.MapClick
	Pins     []Pin
}

// PinFromMapInput creates a place at the selected map point. City may be empty.
type PinFromMapInput struct {
	SessionID uuid.UUID `validate:"required"`
	Name      string    `validate:"required"`
	City      string
	Ratings   entity.Ratings
	Notes     string
	Tags      []string
}

// NearbyPlace is a place and its great-circle distance from the query point.
type NearbyPlace struct {
	Place          *entity.Place
	DistanceMeters float64
}

// MapUsecase defines the map page operations.
type MapUsecase interface {
	// View returns the pins inside bound, or all pins when bound is nil.
	View(ctx context.Context, sessionID uuid.UUID, bound *orb.Bound) (*MapView, error)
	SelectPoint(ctx context.Context, sessionID uuid.UUID, lat, lng float64) (*entity.MapClick, error)
	ClearPoint(ctx context.Context, sessionID uuid.UUID) error
	PinFromMap(ctx context.Context, input *PinFromMapInput) (*entity.Place, error)
	Nearby(ctx context.Context, sessionID uuid.UUID, lat, lng, radiusMeters float64) ([]NearbyPlace, error)
}
