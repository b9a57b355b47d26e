package impl

import (
	"context"
	"log/slog"

	deliverycontext "trustbites/internal/delivery/context"
	"trustbites/internal/domain/entity"
	domainerrors "trustbites/internal/domain/errors"
	"trustbites/internal/domain/repository"
	"trustbites/internal/usecase"

	"github.com/google/uuid"
)

// navigationService implements the NavigationUsecase interface.
type navigationService struct {
	sessions repository.SessionManager
	logger   *slog.Logger
}

// NewNavigationService is the constructor for navigationService.
func NewNavigationService(sessions repository.SessionManager, logger *slog.Logger) usecase.NavigationUsecase {
	return &navigationService{
		sessions: sessions,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *navigationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *navigationService) Current(ctx context.Context, sessionID uuid.UUID) (*usecase.NavigationState, error) {
	var state *usecase.NavigationState
	err := inSession(ctx, srv.sessions, sessionID, func(scope repository.SessionScope) error {
		state = navigationState(scope.Session())

		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

// Navigate moves to a page. The edit target and map selection survive navigation.
func (srv *navigationService) Navigate(ctx context.Context, sessionID uuid.UUID, page string) (*usecase.NavigationState, error) {
	target, ok := entity.ParsePage(page)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown page " + page)
	}

	return srv.mutate(ctx, sessionID, func(scope repository.SessionScope) error {
		scope.Session().Navigation.GoTo(target)

		return nil
	})
}

// BeginEdit opens the place form for an existing place.
func (srv *navigationService) BeginEdit(ctx context.Context, sessionID, placeID uuid.UUID) (*usecase.NavigationState, error) {
	state, err := srv.mutate(ctx, sessionID, func(scope repository.SessionScope) error {
		if _, err := scope.PlaceRepo().FindByID(ctx, placeID); err != nil {
			return placeLookupError(err)
		}
		scope.Session().Navigation.BeginEdit(placeID)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Edit started", slog.Any("place_id", placeID))

	return state, nil
}

// CancelEdit drops the edit target without saving.
func (srv *navigationService) CancelEdit(ctx context.Context, sessionID uuid.UUID) (*usecase.NavigationState, error) {
	return srv.mutate(ctx, sessionID, func(scope repository.SessionScope) error {
		scope.Session().Navigation.CancelEdit()

		return nil
	})
}

// mutate applies fn to a signed-in session and returns the resulting state.
func (srv *navigationService) mutate(ctx context.Context, sessionID uuid.UUID, fn func(scope repository.SessionScope) error) (*usecase.NavigationState, error) {
	var state *usecase.NavigationState
	err := inSession(ctx, srv.sessions, sessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}
		if err := fn(scope); err != nil {
			return err
		}
		state = navigationState(scope.Session())

		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}
