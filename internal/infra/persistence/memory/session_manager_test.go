package memory

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"trustbites/internal/domain/entity"
	"trustbites/internal/domain/repository"
	mockSvc "trustbites/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_OpenExecuteClose(t *testing.T) {
	ctx := context.Background()
	manager := NewSessionManager()

	session, err := manager.Open(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PageHome, session.Navigation.Page)
	assert.Equal(t, 1, manager.Count())

	err = manager.Execute(ctx, session.ID, func(scope repository.SessionScope) error {
		scope.Session().Navigation.GoTo(entity.PageFeed)

		return scope.FeedRepo().Append(ctx, &entity.FeedEvent{ID: uuid.New(), Kind: entity.FeedKindJoin})
	})
	require.NoError(t, err)

	err = manager.Execute(ctx, session.ID, func(scope repository.SessionScope) error {
		assert.Equal(t, entity.PageFeed, scope.Session().Navigation.Page)
		events, err := scope.FeedRepo().ListRecent(ctx)
		require.NoError(t, err)
		assert.Len(t, events, 1)

		return nil
	})
	require.NoError(t, err)

	require.NoError(t, manager.Close(ctx, session.ID))
	assert.Equal(t, 0, manager.Count())

	err = manager.Execute(ctx, session.ID, func(repository.SessionScope) error { return nil })
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	assert.ErrorIs(t, manager.Close(ctx, session.ID), repository.ErrSessionNotFound)
}

func TestSessionManager_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	manager := NewSessionManager()

	first, err := manager.Open(ctx)
	require.NoError(t, err)
	second, err := manager.Open(ctx)
	require.NoError(t, err)

	require.NoError(t, manager.Execute(ctx, first.ID, func(scope repository.SessionScope) error {
		return scope.AccountRepo().Create(ctx, &entity.Account{Email: "ana@x.com"})
	}))

	require.NoError(t, manager.Execute(ctx, second.ID, func(scope repository.SessionScope) error {
		_, err := scope.AccountRepo().FindByEmail(ctx, "ana@x.com")
		assert.ErrorIs(t, err, repository.ErrAccountNotFound)

		return nil
	}))
}

func TestSessionManager_ExecuteSerializesWork(t *testing.T) {
	ctx := context.Background()
	manager := NewSessionManager()
	session, err := manager.Open(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = manager.Execute(ctx, session.ID, func(scope repository.SessionScope) error {
				return scope.FeedRepo().Append(ctx, &entity.FeedEvent{ID: uuid.New()})
			})
		}()
	}
	wg.Wait()

	require.NoError(t, manager.Execute(ctx, session.ID, func(scope repository.SessionScope) error {
		events, err := scope.FeedRepo().ListRecent(ctx)
		require.NoError(t, err)
		assert.Len(t, events, 50)

		return nil
	}))
}

func TestSessionManager_Sweep(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	manager := newSessionManager(func() time.Time { return clock })

	stale, err := manager.Open(ctx)
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	fresh, err := manager.Open(ctx)
	require.NoError(t, err)

	closed, err := manager.Sweep(ctx, clock.Add(-30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	assert.ErrorIs(t, manager.Execute(ctx, stale.ID, func(repository.SessionScope) error { return nil }), repository.ErrSessionNotFound)
	assert.NoError(t, manager.Execute(ctx, fresh.ID, func(repository.SessionScope) error { return nil }))
}

func TestSessionReaper_SweepOnce(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	manager := newSessionManager(func() time.Time { return clock })
	_, err := manager.Open(ctx)
	require.NoError(t, err)

	metrics := mockSvc.NewMockMetrics(t)
	metrics.EXPECT().SessionsClosed("expired", 1).Once()
	metrics.EXPECT().SetLiveSessions(0).Once()

	reaper := &SessionReaper{
		manager:     manager,
		metrics:     metrics,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		idleTimeout: time.Hour,
		interval:    time.Minute,
	}

	assert.Equal(t, 1, reaper.SweepOnce(ctx, clock.Add(2*time.Hour)))
}
