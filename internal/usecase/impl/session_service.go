package impl

import (
	"context"
	"log/slog"

	deliverycontext "trustbites/internal/delivery/context"
	domainerrors "trustbites/internal/domain/errors"
	"trustbites/internal/domain/repository"
	"trustbites/internal/domain/service"
	"trustbites/internal/errors"
	"trustbites/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessions     repository.SessionManager
	tokenService service.TokenService
	metrics      service.Metrics
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Sessions     repository.SessionManager
	TokenService service.TokenService
	Metrics      service.Metrics
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		sessions:     params.Sessions,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Open starts an empty session and issues its token.
func (srv *sessionService) Open(ctx context.Context) (*usecase.OpenSessionOutput, error) {
	session, err := srv.sessions.Open(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session")
	}

	token, err := srv.tokenService.GenerateSessionToken(session.ID)
	if err != nil {
		_ = srv.sessions.Close(ctx, session.ID)
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to issue session token")
	}

	srv.metrics.SessionOpened()
	srv.metrics.SetLiveSessions(srv.sessions.Count())
	srv.log(ctx).Info("Session opened", slog.Any("session_id", session.ID))

	return &usecase.OpenSessionOutput{Session: session, Token: token}, nil
}

// Close discards the session and everything it owns.
func (srv *sessionService) Close(ctx context.Context, sessionID uuid.UUID) error {
	if err := srv.sessions.Close(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrSessionNotFound.WrapMessage("failed to close session")
		}

		return errors.Wrap(err, "failed to close session")
	}

	srv.metrics.SessionsClosed("logout", 1)
	srv.metrics.SetLiveSessions(srv.sessions.Count())
	srv.log(ctx).Info("Session closed", slog.Any("session_id", sessionID))

	return nil
}

// Resolve checks the token and that its session is still alive.
func (srv *sessionService) Resolve(ctx context.Context, token string) (uuid.UUID, *usecase.NavigationState, error) {
	claims, err := srv.tokenService.ValidateSessionToken(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return uuid.Nil, nil, domainerrors.ErrInvalidSessionToken
	}

	var state *usecase.NavigationState
	err = inSession(ctx, srv.sessions, claims.SessionID, func(scope repository.SessionScope) error {
		state = navigationState(scope.Session())

		return nil
	})
	if err != nil {
		return uuid.Nil, nil, err
	}

	return claims.SessionID, state, nil
}
