package memory

import (
	"context"
	"slices"

	"trustbites/internal/domain/entity"
	"trustbites/internal/domain/repository"

	"github.com/google/uuid"
)

// placeRepository implements repository.PlaceRepository on an ordered slice.
// Callers always receive clones, so stored places only change through Update.
type placeRepository struct {
	places []*entity.Place
}

// NewPlaceRepository creates an empty place store.
func NewPlaceRepository() repository.PlaceRepository {
	return &placeRepository{}
}

func (repo *placeRepository) Prepend(_ context.Context, place *entity.Place) error {
	repo.places = slices.Insert(repo.places, 0, place.Clone())

	return nil
}

func (repo *placeRepository) Append(_ context.Context, place *entity.Place) error {
	repo.places = append(repo.places, place.Clone())

	return nil
}

func (repo *placeRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Place, error) {
	idx := repo.indexOf(id)
	if idx < 0 {
		return nil, repository.ErrPlaceNotFound
	}

	return repo.places[idx].Clone(), nil
}

func (repo *placeRepository) Update(_ context.Context, place *entity.Place) error {
	idx := repo.indexOf(place.ID)
	if idx < 0 {
		return repository.ErrPlaceNotFound
	}
	repo.places[idx] = place.Clone()

	return nil
}

func (repo *placeRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	idx := repo.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	repo.places = slices.Delete(repo.places, idx, idx+1)

	return true, nil
}

// List filters in stored order, then sorts stably so ties keep that order.
func (repo *placeRepository) List(_ context.Context, query entity.PlaceQuery) ([]*entity.Place, error) {
	result := make([]*entity.Place, 0, len(repo.places))
	for _, place := range repo.places {
		if query.Matches(place) {
			result = append(result, place.Clone())
		}
	}
	entity.SortPlaces(result, query.SortBy)

	return result, nil
}

func (repo *placeRepository) All(_ context.Context) ([]*entity.Place, error) {
	result := make([]*entity.Place, 0, len(repo.places))
	for _, place := range repo.places {
		result = append(result, place.Clone())
	}

	return result, nil
}

func (repo *placeRepository) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(repo.places, func(p *entity.Place) bool {
		return p.ID == id
	})
}
