package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"trustbites/internal/domain/entity"
	domainerrors "trustbites/internal/domain/errors"
	"trustbites/internal/domain/service"
	"trustbites/internal/errors"
	"trustbites/internal/infra/persistence/memory"
	mockSvc "trustbites/internal/mocks/service"
	"trustbites/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T) (usecase.SessionUsecase, *mockSvc.MockTokenService, *mockSvc.MockMetrics) {
	t.Helper()

	tokens := mockSvc.NewMockTokenService(t)
	metrics := mockSvc.NewMockMetrics(t)
	metrics.EXPECT().SetLiveSessions(mock.Anything).Maybe()

	srv := NewSessionService(SessionServiceParams{
		Sessions:     memory.NewSessionManager(),
		TokenService: tokens,
		Metrics:      metrics,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return srv, tokens, metrics
}

func TestSessionService_OpenResolveClose(t *testing.T) {
	srv, tokens, metrics := newTestSessionService(t)
	ctx := context.Background()

	tokens.EXPECT().GenerateSessionToken(mock.Anything).Return("token-1", nil).Once()
	metrics.EXPECT().SessionOpened().Once()

	opened, err := srv.Open(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", opened.Token)
	assert.False(t, opened.Session.Identity.SignedIn)

	tokens.EXPECT().ValidateSessionToken("token-1").
		Return(&service.Claims{SessionID: opened.Session.ID}, nil).Twice()

	id, state, err := srv.Resolve(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, opened.Session.ID, id)
	assert.Equal(t, entity.PageHome, state.Page)

	metrics.EXPECT().SessionsClosed("logout", 1).Once()
	require.NoError(t, srv.Close(ctx, opened.Session.ID))

	_, _, err = srv.Resolve(ctx, "token-1")
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))

	err = srv.Close(ctx, opened.Session.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestSessionService_ResolveRejectsBadToken(t *testing.T) {
	srv, tokens, _ := newTestSessionService(t)

	tokens.EXPECT().ValidateSessionToken("forged").Return(nil, errors.New("signature is invalid")).Once()

	id, state, err := srv.Resolve(context.Background(), "forged")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSessionToken))
	assert.Equal(t, uuid.Nil, id)
	assert.Nil(t, state)
}

func TestSessionService_OpenTokenFailure(t *testing.T) {
	srv, tokens, _ := newTestSessionService(t)

	tokens.EXPECT().GenerateSessionToken(mock.Anything).Return("", errors.New("no key")).Once()

	_, err := srv.Open(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}
