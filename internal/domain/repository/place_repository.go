package repository

import (
	"context"

	"trustbites/internal/domain/entity"
	"trustbites/internal/errors"

	"github.com/google/uuid"
)

// ErrPlaceNotFound is returned when a place id is unknown.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceRepository stores the ordered place collection of a session.
// Stored order is insertion order: Prepend puts a place first, Append last.
type PlaceRepository interface {
	// Prepend inserts a place at the front of the collection.
	Prepend(ctx context.Context, place *entity.Place) error

	// Append inserts a place at the end of the collection.
	Append(ctx context.Context, place *entity.Place) error

	// FindByID retrieves a copy of a place.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)

	// Update replaces the stored place with the same id, keeping its position.
	Update(ctx context.Context, place *entity.Place) error

	// Delete removes a place. It reports false if the id was unknown.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// List returns the places matching the query, in the query's sort order.
	List(ctx context.Context, query entity.PlaceQuery) ([]*entity.Place, error)

	// All returns every place in stored order.
	All(ctx context.Context) ([]*entity.Place, error)
}
