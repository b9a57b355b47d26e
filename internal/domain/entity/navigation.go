package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Page is a screen of the application.
type Page string

const (
	PageHome     Page = "Home"
	PageAddPlace Page = "Add a place"
	PageMyList   Page = "My list"
	PageMap      Page = "Map"
	PageFeed     Page = "Feed"
	PageProfile  Page = "Profile"
)

// LandingPage is where signed-out sessions are pinned.
const LandingPage = PageHome

// Pages lists every page in navigation order.
var Pages = []Page{PageHome, PageAddPlace, PageMyList, PageMap, PageFeed, PageProfile}

// ParsePage resolves a page name, case-insensitively.
func ParsePage(s string) (Page, bool) {
	s = strings.TrimSpace(s)
	for _, page := range Pages {
		if strings.EqualFold(string(page), s) {
			return page, true
		}
	}

	return "", false
}

// MapClick is the last point selected on the map.
type MapClick struct {
	Lat float64
	Lng float64
}

// Navigation is the per-session navigation state machine.
// It only changes through the explicit commands below.
type Navigation struct {
	Page         Page
	EditTarget   *uuid.UUID
	LastMapClick *MapClick
}

// NewNavigation returns the initial state.
func NewNavigation() Navigation {
	return Navigation{Page: PageHome}
}

// Current returns the page to show. Signed-out sessions always get the landing page.
func (n *Navigation) Current(signedIn bool) Page {
	if !signedIn {
		return LandingPage
	}

	return n.Page
}

// GoTo moves to the page without touching the edit target or map selection.
func (n *Navigation) GoTo(page Page) {
	n.Page = page
}

// BeginEdit remembers the place being edited and opens the place form.
func (n *Navigation) BeginEdit(placeID uuid.UUID) {
	id := placeID
	n.EditTarget = &id
	n.Page = PageAddPlace
}

// IsEditing reports whether placeID is the current edit target.
func (n *Navigation) IsEditing(placeID uuid.UUID) bool {
	return n.EditTarget != nil && *n.EditTarget == placeID
}

// CompleteEdit clears the edit target after a successful save and shows the list.
// It reports whether placeID was the edit target.
func (n *Navigation) CompleteEdit(placeID uuid.UUID) bool {
	wasTarget := n.IsEditing(placeID)
	if wasTarget {
		n.EditTarget = nil
	}
	n.Page = PageMyList

	return wasTarget
}

// CancelEdit drops the edit target without saving.
func (n *Navigation) CancelEdit() {
	n.EditTarget = nil
}

// SelectMapPoint remembers a map click.
func (n *Navigation) SelectMapPoint(lat, lng float64) {
	n.LastMapClick = &MapClick{Lat: lat, Lng: lng}
}

// ClearMapPoint forgets the last map click.
func (n *Navigation) ClearMapPoint() {
	n.LastMapClick = nil
}

// Reset returns to the initial state.
func (n *Navigation) Reset() {
	*n = NewNavigation()
}
