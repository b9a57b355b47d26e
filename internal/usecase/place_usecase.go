package usecase

import (
	"context"

	"trustbites/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlaceInput defines a new place. Location is looked up when it is nil.
type CreatePlaceInput struct {
	SessionID uuid.UUID `validate:"required"`
	Name      string    `validate:"required"`
	City      string    `validate:"required"`
	Ratings   entity.Ratings
	Notes     string
	Tags      []string
	Photo     []byte
	Location  *entity.Coordinates
}

// UpdatePlaceInput replaces the editable fields of a place. Photo is kept when empty.
type UpdatePlaceInput struct {
	SessionID uuid.UUID `validate:"required"`
	PlaceID   uuid.UUID `validate:"required"`
	Name      string    `validate:"required"`
	City      string    `validate:"required"`
	Ratings   entity.Ratings
	Notes     string
	Tags      []string
	Photo     []byte
}

// ListPlacesInput filters and orders the place list.
type ListPlacesInput struct {
	SessionID uuid.UUID `validate:"required"`
	Query     string
	Tags      []string
	SortBy    string
}

// PlaceUsecase defines the operations on the place list of a session.
type PlaceUsecase interface {
	Create(ctx context.Context, input *CreatePlaceInput) (*entity.Place, error)
	Update(ctx context.Context, input *UpdatePlaceInput) (*entity.Place, error)
	Delete(ctx context.Context, sessionID, placeID uuid.UUID) (bool, error)
	Get(ctx context.Context, sessionID, placeID uuid.UUID) (*entity.Place, error)
	List(ctx context.Context, input *ListPlacesInput) ([]*entity.Place, error)
	Tags(ctx context.Context, sessionID uuid.UUID) ([]string, error)
	ShareQR(ctx context.Context, sessionID, placeID uuid.UUID) ([]byte, error)
}
