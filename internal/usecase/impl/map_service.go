package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"trustbites/config"
	deliverycontext "trustbites/internal/delivery/context"
	"trustbites/internal/domain/entity"
	domainerrors "trustbites/internal/domain/errors"
	"trustbites/internal/domain/repository"
	"trustbites/internal/domain/service"
	"trustbites/internal/errors"
	"trustbites/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

// mapService implements the MapUsecase interface.
type mapService struct {
	sessions      repository.SessionManager
	geocoder      service.Geocoder
	feed          *feedRecorder
	validate      *validator.Validate
	defaultCenter entity.Coordinates
	now           clock
	logger        *slog.Logger
}

// MapServiceParams holds dependencies for MapService, injected by Fx.
type MapServiceParams struct {
	fx.In

	Config   *config.Config
	Sessions repository.SessionManager
	Geocoder service.Geocoder
	Metrics  service.Metrics
	Logger   *slog.Logger
}

// NewMapService is the constructor for mapService.
func NewMapService(params MapServiceParams) usecase.MapUsecase {
	return &mapService{
		sessions: params.Sessions,
		geocoder: params.Geocoder,
		feed:     &feedRecorder{metrics: params.Metrics, now: utcNow},
		validate: newValidator(),
		defaultCenter: entity.Coordinates{
			Lat: params.Config.MapView.DefaultLat,
			Lon: params.Config.MapView.DefaultLng,
		},
		now:    utcNow,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// View centers the map on the selected point, or on the default center, and lists the pins.
func (srv *mapService) View(ctx context.Context, sessionID uuid.UUID, bound *orb.Bound) (*usecase.MapView, error) {
	view := &usecase.MapView{Center: srv.defaultCenter, Pins: []usecase.Pin{}}
	err := inSession(ctx, srv.sessions, sessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}

		if click := scope.Session().Navigation.LastMapClick; click != nil {
			selected := *click
			view.Selected = &selected
			view.Center = entity.Coordinates{Lat: click.Lat, Lon: click.Lng}
		}

		places, err := scope.PlaceRepo().All(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load places")
		}

		for _, place := range places {
			if place.Location == nil {
				continue
			}
			if bound != nil && !bound.Contains(place.Location.Point()) {
				continue
			}
			view.Pins = append(view.Pins, usecase.Pin{
				PlaceID: place.ID,
				Name:    place.Name,
				City:    place.City,
				Lat:     place.Location.Lat,
				Lon:     place.Location.Lon,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// SelectPoint remembers a map click.
func (srv *mapService) SelectPoint(ctx context.Context, sessionID uuid.UUID, lat, lng float64) (*entity.MapClick, error) {
	if err := validatePosition(lat, lng); err != nil {
		return nil, err
	}

	err := inSession(ctx, srv.sessions, sessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}
		scope.Session().Navigation.SelectMapPoint(lat, lng)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entity.MapClick{Lat: lat, Lng: lng}, nil
}

// ClearPoint forgets the map click.
func (srv *mapService) ClearPoint(ctx context.Context, sessionID uuid.UUID) error {
	return inSession(ctx, srv.sessions, sessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}
		scope.Session().Navigation.ClearMapPoint()

		return nil
	})
}

// PinFromMap appends a place at the selected point. Without a city the feed names the
// settlement found by a reverse lookup, while the stored city stays empty.
func (srv *mapService) PinFromMap(ctx context.Context, input *usecase.PinFromMapInput) (*entity.Place, error) {
	in := *input
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.Notes = strings.TrimSpace(in.Notes)

	if err := validateInput(srv.validate, &in); err != nil {
		return nil, err
	}
	if err := validateRatings(in.Ratings); err != nil {
		return nil, err
	}

	var click entity.MapClick
	err := inSession(ctx, srv.sessions, in.SessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}
		selected := scope.Session().Navigation.LastMapClick
		if selected == nil {
			return domainerrors.ErrValidationFailed.WithDetails("no map point selected")
		}
		click = *selected

		return nil
	})
	if err != nil {
		return nil, err
	}

	cityText := in.City
	if cityText == "" {
		cityText = srv.geocoder.Reverse(ctx, click.Lat, click.Lng)
	}

	now := srv.now()
	place := &entity.Place{
		ID:        uuid.New(),
		Name:      in.Name,
		City:      in.City,
		Ratings:   in.Ratings,
		Notes:     in.Notes,
		Tags:      entity.NormalizeTags(in.Tags),
		CreatedAt: now,
		UpdatedAt: now,
		Location:  &entity.Coordinates{Lat: click.Lat, Lon: click.Lng},
	}

	err = inSession(ctx, srv.sessions, in.SessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}
		if err := scope.PlaceRepo().Append(ctx, place); err != nil {
			return errors.Wrap(err, "failed to store place")
		}
		scope.Session().Navigation.ClearMapPoint()

		return srv.feed.record(ctx, scope.FeedRepo(), entity.FeedKindPin, "pinned "+place.Name+" in "+cityText+".")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Place pinned from map", slog.Any("place_id", place.ID), slog.String("city", cityText))

	return place, nil
}

// Nearby lists located places within radiusMeters of the point, nearest first.
func (srv *mapService) Nearby(ctx context.Context, sessionID uuid.UUID, lat, lng, radiusMeters float64) ([]usecase.NearbyPlace, error) {
	if err := validatePosition(lat, lng); err != nil {
		return nil, err
	}
	if radiusMeters <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be positive")
	}

	origin := orb.Point{lng, lat}
	result := []usecase.NearbyPlace{}
	err := inSession(ctx, srv.sessions, sessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}

		places, err := scope.PlaceRepo().All(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load places")
		}

		for _, place := range places {
			if place.Location == nil {
				continue
			}
			if d := geo.Distance(origin, place.Location.Point()); d <= radiusMeters {
				result = append(result, usecase.NearbyPlace{Place: place, DistanceMeters: d})
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(result, func(a, b usecase.NearbyPlace) int {
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})

	return result, nil
}

func validatePosition(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("position %.5f, %.5f is out of range", lat, lng))
	}

	return nil
}
