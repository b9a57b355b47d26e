package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNavigation_SignedOutIsPinnedToLanding(t *testing.T) {
	nav := NewNavigation()
	nav.GoTo(PageFeed)

	assert.Equal(t, LandingPage, nav.Current(false))
	assert.Equal(t, PageFeed, nav.Current(true))
}

func TestNavigation_EditLifecycle(t *testing.T) {
	nav := NewNavigation()
	id := uuid.New()

	nav.BeginEdit(id)
	assert.Equal(t, PageAddPlace, nav.Page)
	assert.True(t, nav.IsEditing(id))

	// a different place does not clear the target
	assert.False(t, nav.CompleteEdit(uuid.New()))
	assert.True(t, nav.IsEditing(id))

	assert.True(t, nav.CompleteEdit(id))
	assert.Nil(t, nav.EditTarget)
	assert.Equal(t, PageMyList, nav.Page)

	// cleared exactly once
	assert.False(t, nav.CompleteEdit(id))
}

func TestNavigation_MapPoint(t *testing.T) {
	nav := NewNavigation()
	nav.SelectMapPoint(38.7, -9.1)
	if assert.NotNil(t, nav.LastMapClick) {
		assert.Equal(t, MapClick{Lat: 38.7, Lng: -9.1}, *nav.LastMapClick)
	}

	nav.ClearMapPoint()
	assert.Nil(t, nav.LastMapClick)
}

func TestParsePage(t *testing.T) {
	page, ok := ParsePage("my list")
	assert.True(t, ok)
	assert.Equal(t, PageMyList, page)

	_, ok = ParsePage("Settings")
	assert.False(t, ok)
}

func TestSession_SignOutResetsState(t *testing.T) {
	s := NewSession(time.Now())
	s.SignIn(&Account{Email: "ana@x.com", FirstName: "Ana", LastName: "Silva"})
	s.Profile = Profile{DisplayName: "Ana Silva", Bio: "hi"}
	s.Navigation.BeginEdit(uuid.New())
	s.Navigation.SelectMapPoint(1, 2)

	assert.Equal(t, PageAddPlace, s.CurrentPage())

	s.SignOut()
	s.SignOut()

	assert.Equal(t, Identity{}, s.Identity)
	assert.Equal(t, Profile{}, s.Profile)
	assert.Nil(t, s.Navigation.EditTarget)
	assert.Nil(t, s.Navigation.LastMapClick)
	assert.Equal(t, LandingPage, s.CurrentPage())
}
