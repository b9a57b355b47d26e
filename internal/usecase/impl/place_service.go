package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "trustbites/internal/delivery/context"
	"trustbites/internal/domain/entity"
	domainerrors "trustbites/internal/domain/errors"
	"trustbites/internal/domain/repository"
	"trustbites/internal/domain/service"
	"trustbites/internal/errors"
	"trustbites/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// placeService implements the PlaceUsecase interface.
// Geocoding, image encoding and QR rendering run between two session locks so that
// a slow lookup never holds the session.
type placeService struct {
	sessions repository.SessionManager
	geocoder service.Geocoder
	images   service.ImageProcessor
	qrcodes  service.QRCodeService
	feed     *feedRecorder
	validate *validator.Validate
	now      clock
	logger   *slog.Logger
}

// PlaceServiceParams holds dependencies for PlaceService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	Sessions repository.SessionManager
	Geocoder service.Geocoder
	Images   service.ImageProcessor
	QRCodes  service.QRCodeService
	Metrics  service.Metrics
	Logger   *slog.Logger
}

// NewPlaceService is the constructor for placeService.
func NewPlaceService(params PlaceServiceParams) usecase.PlaceUsecase {
	return &placeService{
		sessions: params.Sessions,
		geocoder: params.Geocoder,
		images:   params.Images,
		qrcodes:  params.QRCodes,
		feed:     &feedRecorder{metrics: params.Metrics, now: utcNow},
		validate: newValidator(),
		now:      utcNow,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *placeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a place at the front of the list and shows the list.
func (srv *placeService) Create(ctx context.Context, input *usecase.CreatePlaceInput) (*entity.Place, error) {
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
	if err := inSession(ctx, srv.sessions, in.SessionID, requireSignedIn); err != nil {
		return nil, err
	}

	photo, err := srv.encodePhoto(in.Photo)
	if err != nil {
		return nil, err
	}

	location := in.Location
	if location == nil {
		location = srv.locate(ctx, in.Name+" "+in.City, in.City)
	}

	now := srv.now()
	place := &entity.Place{
		ID:        uuid.New(),
		Name:      in.Name,
		City:      in.City,
		Ratings:   in.Ratings,
		Notes:     in.Notes,
		Tags:      entity.NormalizeTags(in.Tags),
		Photo:     photo,
		CreatedAt: now,
		UpdatedAt: now,
		Location:  location,
	}

	err = inSession(ctx, srv.sessions, in.SessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}
		if err := scope.PlaceRepo().Prepend(ctx, place); err != nil {
			return errors.Wrap(err, "failed to store place")
		}
		scope.Session().Navigation.GoTo(entity.PageMyList)

		return srv.feed.record(ctx, scope.FeedRepo(), entity.FeedKindAdd, "Added "+place.Name+" in "+place.City+".")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Place created", slog.Any("place_id", place.ID), slog.Bool("located", place.Location != nil))

	return place, nil
}

// Update replaces the editable fields of a place and completes the edit.
func (srv *placeService) Update(ctx context.Context, input *usecase.UpdatePlaceInput) (*entity.Place, error) {
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

	// fail fast on a stale id before any lookup
	if _, err := srv.Get(ctx, in.SessionID, in.PlaceID); err != nil {
		return nil, err
	}

	var photo string
	if len(in.Photo) > 0 {
		var err error
		if photo, err = srv.encodePhoto(in.Photo); err != nil {
			return nil, err
		}
	}

	location := srv.locate(ctx, in.Name+" "+in.City)

	var updated *entity.Place
	err := inSession(ctx, srv.sessions, in.SessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}

		place, err := scope.PlaceRepo().FindByID(ctx, in.PlaceID)
		if err != nil {
			return placeLookupError(err)
		}

		place.Name = in.Name
		place.City = in.City
		place.Ratings = in.Ratings
		place.Notes = in.Notes
		place.Tags = entity.NormalizeTags(in.Tags)
		place.UpdatedAt = srv.now()
		if photo != "" {
			place.Photo = photo
		}
		if location != nil {
			place.Location = location
		}

		if err := scope.PlaceRepo().Update(ctx, place); err != nil {
			return placeLookupError(err)
		}

		scope.Session().Navigation.CompleteEdit(place.ID)
		updated = place

		return srv.feed.record(ctx, scope.FeedRepo(), entity.FeedKindEdit, "Edited "+place.Name+" in "+place.City+".")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Place updated", slog.Any("place_id", updated.ID))

	return updated, nil
}

// Delete removes a place. A missing place is reported as false, not as an error.
func (srv *placeService) Delete(ctx context.Context, sessionID, placeID uuid.UUID) (bool, error) {
	var deleted bool
	err := inSession(ctx, srv.sessions, sessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}

		var err error
		deleted, err = scope.PlaceRepo().Delete(ctx, placeID)
		if err != nil {
			return errors.Wrap(err, "failed to delete place")
		}

		// the pending edit points at nothing now
		if deleted && scope.Session().Navigation.IsEditing(placeID) {
			scope.Session().Navigation.CancelEdit()
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	srv.log(ctx).Debug("Place delete", slog.Any("place_id", placeID), slog.Bool("deleted", deleted))

	return deleted, nil
}

func (srv *placeService) Get(ctx context.Context, sessionID, placeID uuid.UUID) (*entity.Place, error) {
	var place *entity.Place
	err := inSession(ctx, srv.sessions, sessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}

		var err error
		place, err = scope.PlaceRepo().FindByID(ctx, placeID)

		return placeLookupError(err)
	})
	if err != nil {
		return nil, err
	}

	return place, nil
}

// List filters by text and tags, then sorts descending by the requested key.
func (srv *placeService) List(ctx context.Context, input *usecase.ListPlacesInput) ([]*entity.Place, error) {
	sortBy, ok := entity.ParseSortKey(input.SortBy)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown sort key " + input.SortBy)
	}

	query := entity.PlaceQuery{
		Text:         strings.TrimSpace(input.Query),
		RequiredTags: entity.NormalizeTags(input.Tags),
		SortBy:       sortBy,
	}

	var places []*entity.Place
	err := inSession(ctx, srv.sessions, input.SessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}

		var err error
		places, err = scope.PlaceRepo().List(ctx, query)
		if err != nil {
			return errors.Wrap(err, "failed to list places")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return places, nil
}

// Tags returns every distinct tag in use, sorted.
func (srv *placeService) Tags(ctx context.Context, sessionID uuid.UUID) ([]string, error) {
	var tags []string
	err := inSession(ctx, srv.sessions, sessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}

		places, err := scope.PlaceRepo().All(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load places")
		}

		tags = []string{}
		for _, place := range places {
			for _, tag := range place.Tags {
				if !slices.Contains(tags, tag) {
					tags = append(tags, tag)
				}
			}
		}
		slices.Sort(tags)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tags, nil
}

// ShareQR renders a QR code pointing at the place.
func (srv *placeService) ShareQR(ctx context.Context, sessionID, placeID uuid.UUID) ([]byte, error) {
	place, err := srv.Get(ctx, sessionID, placeID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodes.GeneratePlaceQR(place)
	if err != nil {
		srv.log(ctx).Error("Failed to generate QR code", slog.Any("place_id", placeID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to generate QR code")
	}

	return png, nil
}

func (srv *placeService) encodePhoto(upload []byte) (string, error) {
	if len(upload) == 0 {
		return "", nil
	}

	return srv.images.Encode(upload)
}

// locate tries each query in turn and returns the first hit, or nil.
func (srv *placeService) locate(ctx context.Context, queries ...string) *entity.Coordinates {
	for _, query := range queries {
		if coords, ok := srv.geocoder.Forward(ctx, query); ok {
			return &coords
		}
	}
	srv.log(ctx).Debug("Place could not be located", slog.Any("queries", queries))

	return nil
}

func placeLookupError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrPlaceNotFound) {
		return domainerrors.ErrPlaceNotFound.WrapMessage("failed to find place")
	}

	return errors.Wrap(err, "failed to find place")
}
