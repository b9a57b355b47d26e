package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"trustbites/config"
	"trustbites/internal/domain/entity"
	"trustbites/internal/domain/repository"
	"trustbites/internal/infra/persistence/memory"
	mockSvc "trustbites/internal/mocks/service"
	"trustbites/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// serviceFixtures wires every use case against one real in-memory session manager.
type serviceFixtures struct {
	sessions   repository.SessionManager
	geocoder   *mockSvc.MockGeocoder
	images     *mockSvc.MockImageProcessor
	qrcodes    *mockSvc.MockQRCodeService
	metrics    *mockSvc.MockMetrics
	hasher     *mockSvc.MockPasswordHasher
	accounts   usecase.AccountUsecase
	places     usecase.PlaceUsecase
	feed       usecase.FeedUsecase
	navigation usecase.NavigationUsecase
	maps       usecase.MapUsecase
	sessionID  uuid.UUID
}

func createTestServices(t *testing.T) *serviceFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &serviceFixtures{
		sessions: memory.NewSessionManager(),
		geocoder: mockSvc.NewMockGeocoder(t),
		images:   mockSvc.NewMockImageProcessor(t),
		qrcodes:  mockSvc.NewMockQRCodeService(t),
		metrics:  mockSvc.NewMockMetrics(t),
		hasher:   mockSvc.NewMockPasswordHasher(t),
	}

	f.metrics.EXPECT().FeedEvent(mock.Anything).Maybe()
	f.hasher.EXPECT().Hash(mock.Anything).RunAndReturn(func(password string) (string, error) {
		return "hashed:" + password, nil
	}).Maybe()
	f.hasher.EXPECT().Check(mock.Anything, mock.Anything).RunAndReturn(func(password, hash string) bool {
		return hash == "hashed:"+password
	}).Maybe()

	f.accounts = NewAccountService(AccountServiceParams{
		Sessions: f.sessions,
		Hasher:   f.hasher,
		Images:   f.images,
		Metrics:  f.metrics,
		Logger:   logger,
	})
	f.places = NewPlaceService(PlaceServiceParams{
		Sessions: f.sessions,
		Geocoder: f.geocoder,
		Images:   f.images,
		QRCodes:  f.qrcodes,
		Metrics:  f.metrics,
		Logger:   logger,
	})
	f.feed = NewFeedService(f.sessions, logger)
	f.navigation = NewNavigationService(f.sessions, logger)
	f.maps = NewMapService(MapServiceParams{
		Config:   cfg,
		Sessions: f.sessions,
		Geocoder: f.geocoder,
		Metrics:  f.metrics,
		Logger:   logger,
	})

	session, err := f.sessions.Open(context.Background())
	require.NoError(t, err)
	f.sessionID = session.ID

	return f
}

// signUpAna registers the account used by most tests.
func (f *serviceFixtures) signUpAna(t *testing.T) *entity.Account {
	t.Helper()

	account, err := f.accounts.Register(context.Background(), &usecase.RegisterInput{
		SessionID: f.sessionID,
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@x.com",
		Password:  "pw1",
	})
	require.NoError(t, err)

	return account
}

// session returns a copy of the session state.
func (f *serviceFixtures) session(t *testing.T) entity.Session {
	t.Helper()

	var snapshot entity.Session
	require.NoError(t, f.sessions.Execute(context.Background(), f.sessionID, func(scope repository.SessionScope) error {
		snapshot = *scope.Session()

		return nil
	}))

	return snapshot
}

// feedEvents reads the feed without requiring a signed-in session.
func (f *serviceFixtures) feedEvents(t *testing.T) []*entity.FeedEvent {
	t.Helper()

	var events []*entity.FeedEvent
	require.NoError(t, f.sessions.Execute(context.Background(), f.sessionID, func(scope repository.SessionScope) error {
		var err error
		events, err = scope.FeedRepo().ListRecent(context.Background())

		return err
	}))

	return events
}

// createPlace adds a place whose lookups all miss.
func (f *serviceFixtures) createPlace(t *testing.T, name, city string, ratings entity.Ratings, tags ...string) *entity.Place {
	t.Helper()

	f.geocoder.EXPECT().Forward(mock.Anything, mock.Anything).Return(entity.Coordinates{}, false).Maybe()

	place, err := f.places.Create(context.Background(), &usecase.CreatePlaceInput{
		SessionID: f.sessionID,
		Name:      name,
		City:      city,
		Ratings:   ratings,
		Tags:      tags,
	})
	require.NoError(t, err)

	return place
}

func placeNames(places []*entity.Place) []string {
	result := make([]string, 0, len(places))
	for _, p := range places {
		result = append(result, p.Name)
	}

	return result
}

func ratings(food, service, location, price int) entity.Ratings {
	return entity.Ratings{Food: food, Service: service, Location: location, Price: price}
}
