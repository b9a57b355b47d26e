package impl

import (
	"context"
	"testing"

	"trustbites/internal/domain/entity"
	domainerrors "trustbites/internal/domain/errors"
	"trustbites/internal/domain/service"
	"trustbites/internal/errors"
	"trustbites/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMapService_ViewCentersOnSelection(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	f.signUpAna(t)

	view, err := f.maps.View(ctx, f.sessionID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.Coordinates{Lat: 38.7223, Lon: -9.1393}, view.Center)
	assert.Nil(t, view.Selected)
	assert.Empty(t, view.Pins)

	click, err := f.maps.SelectPoint(ctx, f.sessionID, 41.15, -8.61)
	require.NoError(t, err)
	assert.Equal(t, entity.MapClick{Lat: 41.15, Lng: -8.61}, *click)

	view, err = f.maps.View(ctx, f.sessionID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.Coordinates{Lat: 41.15, Lon: -8.61}, view.Center)
	require.NotNil(t, view.Selected)

	require.NoError(t, f.maps.ClearPoint(ctx, f.sessionID))
	view, err = f.maps.View(ctx, f.sessionID, nil)
	require.NoError(t, err)
	assert.Nil(t, view.Selected)
}

func TestMapService_ViewListsLocatedPinsInBound(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	f.signUpAna(t)

	f.geocoder.EXPECT().Forward(mock.Anything, "Tasca Lisbon").Return(entity.Coordinates{Lat: 38.71, Lon: -9.14}, true).Once()
	f.geocoder.EXPECT().Forward(mock.Anything, "Grill Porto").Return(entity.Coordinates{Lat: 41.15, Lon: -8.61}, true).Once()
	f.createPlace(t, "Tasca", "Lisbon", ratings(3, 3, 3, 3))
	f.createPlace(t, "Grill", "Porto", ratings(3, 3, 3, 3))
	f.createPlace(t, "Lost", "Atlantis", ratings(3, 3, 3, 3))

	view, err := f.maps.View(ctx, f.sessionID, nil)
	require.NoError(t, err)
	assert.Len(t, view.Pins, 2)

	lisbon := orb.Bound{Min: orb.Point{-9.5, 38.5}, Max: orb.Point{-9.0, 39.0}}
	view, err = f.maps.View(ctx, f.sessionID, &lisbon)
	require.NoError(t, err)
	require.Len(t, view.Pins, 1)
	assert.Equal(t, "Tasca", view.Pins[0].Name)
	assert.Equal(t, 38.71, view.Pins[0].Lat)
	assert.Equal(t, -9.14, view.Pins[0].Lon)
}

func TestMapService_SelectPointValidation(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()

	_, err := f.maps.SelectPoint(ctx, f.sessionID, 38.7, -9.1)
	assert.True(t, errors.Is(err, domainerrors.ErrNotSignedIn))

	f.signUpAna(t)

	_, err = f.maps.SelectPoint(ctx, f.sessionID, 91, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = f.maps.SelectPoint(ctx, f.sessionID, 0, -181)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMapService_PinFromMapWithoutCity(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	f.signUpAna(t)
	existing := f.createPlace(t, "Tasca", "Lisbon", ratings(3, 3, 3, 3))

	_, err := f.maps.SelectPoint(ctx, f.sessionID, 38.69, -9.21)
	require.NoError(t, err)

	f.geocoder.EXPECT().Reverse(mock.Anything, 38.69, -9.21).Return("Oeiras").Once()

	place, err := f.maps.PinFromMap(ctx, &usecase.PinFromMapInput{
		SessionID: f.sessionID,
		Name:      "Beach Bar",
		Ratings:   ratings(4, 4, 5, 3),
		Tags:      []string{"cocktails"},
	})
	require.NoError(t, err)
	assert.Empty(t, place.City)
	require.NotNil(t, place.Location)
	assert.Equal(t, entity.Coordinates{Lat: 38.69, Lon: -9.21}, *place.Location)
	assert.Equal(t, []string{"Cocktails"}, place.Tags)

	session := f.session(t)
	assert.Nil(t, session.Navigation.LastMapClick)
	assert.Equal(t, entity.PageMyList, session.Navigation.Page)

	places, err := f.places.List(ctx, &usecase.ListPlacesInput{SessionID: f.sessionID, SortBy: "Name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tasca", "Beach Bar"}, placeNames(places))

	all, err := f.places.Tags(ctx, f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cocktails"}, all)

	events := f.feedEvents(t)
	assert.Equal(t, entity.FeedKindPin, events[0].Kind)
	assert.Equal(t, "pinned Beach Bar in Oeiras.", events[0].Text)
	assert.NotEqual(t, existing.ID, place.ID)
}

func TestMapService_PinFromMapWithCity(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	f.signUpAna(t)

	_, err := f.maps.SelectPoint(ctx, f.sessionID, 38.69, -9.21)
	require.NoError(t, err)

	place, err := f.maps.PinFromMap(ctx, &usecase.PinFromMapInput{
		SessionID: f.sessionID, Name: "Beach Bar", City: "Oeiras", Ratings: ratings(4, 4, 5, 3),
	})
	require.NoError(t, err)
	assert.Equal(t, "Oeiras", place.City)
	assert.Equal(t, "pinned Beach Bar in Oeiras.", f.feedEvents(t)[0].Text)
	f.geocoder.AssertNotCalled(t, "Reverse", mock.Anything, mock.Anything, mock.Anything)
}

func TestMapService_PinFromMapUnknownCity(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	f.signUpAna(t)

	_, err := f.maps.SelectPoint(ctx, f.sessionID, 0, 0)
	require.NoError(t, err)

	f.geocoder.EXPECT().Reverse(mock.Anything, 0.0, 0.0).Return(service.UnknownCity).Once()

	_, err = f.maps.PinFromMap(ctx, &usecase.PinFromMapInput{
		SessionID: f.sessionID, Name: "Raft", Ratings: ratings(1, 1, 1, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "pinned Raft in Unknown city.", f.feedEvents(t)[0].Text)
}

func TestMapService_PinFromMapRequiresSelection(t *testing.T) {
	f := createTestServices(t)
	f.signUpAna(t)

	_, err := f.maps.PinFromMap(context.Background(), &usecase.PinFromMapInput{
		SessionID: f.sessionID, Name: "Beach Bar", Ratings: ratings(4, 4, 5, 3),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Len(t, f.feedEvents(t), 1)
}

func TestMapService_Nearby(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	f.signUpAna(t)

	f.geocoder.EXPECT().Forward(mock.Anything, "Far Porto").Return(entity.Coordinates{Lat: 41.15, Lon: -8.61}, true).Once()
	f.geocoder.EXPECT().Forward(mock.Anything, "Near Lisbon").Return(entity.Coordinates{Lat: 38.7230, Lon: -9.1400}, true).Once()
	f.geocoder.EXPECT().Forward(mock.Anything, "Nearer Lisbon").Return(entity.Coordinates{Lat: 38.7224, Lon: -9.1394}, true).Once()
	f.createPlace(t, "Far", "Porto", ratings(3, 3, 3, 3))
	f.createPlace(t, "Near", "Lisbon", ratings(3, 3, 3, 3))
	f.createPlace(t, "Nearer", "Lisbon", ratings(3, 3, 3, 3))

	result, err := f.maps.Nearby(ctx, f.sessionID, 38.7223, -9.1393, 5000)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Nearer", result[0].Place.Name)
	assert.Equal(t, "Near", result[1].Place.Name)
	assert.Less(t, result[0].DistanceMeters, result[1].DistanceMeters)

	_, err = f.maps.Nearby(ctx, f.sessionID, 38.7223, -9.1393, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
