package entity

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Ratings are the four 1..5 scores given to a place.
type Ratings struct {
	Food     int
	Service  int
	Location int
	Price    int
}

// Valid reports whether every score lies within [MinRating, MaxRating].
func (r Ratings) Valid() bool {
	for _, v := range []int{r.Food, r.Service, r.Location, r.Price} {
		if v < MinRating || v > MaxRating {
			return false
		}
	}

	return true
}

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Point converts the coordinates to an orb point (x = longitude, y = latitude).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// CoordinatesFromPoint converts an orb point back to coordinates.
func CoordinatesFromPoint(p orb.Point) Coordinates {
	return Coordinates{Lat: p.Lat(), Lon: p.Lon()}
}

// Place is a restaurant recommendation owned by the active session.
type Place struct {
	ID        uuid.UUID    // Generated at creation, immutable.
	Name      string       // Display name of the restaurant.
	City      string       // City the restaurant is in. May be empty for map pins.
	Ratings   Ratings      // Food, service, location and price scores.
	Notes     string       // Free text.
	Tags      []string     // Normalized tags.
	Photo     string       // base64 encoded JPEG, empty when no photo was uploaded.
	CreatedAt time.Time    // Creation timestamp, immutable.
	UpdatedAt time.Time    // Timestamp of the last edit.
	Location  *Coordinates // nil when the place could not be geocoded.
}

// HasTags reports whether the place carries all of the given tags.
func (p *Place) HasTags(tags []string) bool {
	for _, tag := range tags {
		if !slices.Contains(p.Tags, tag) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy so callers never share tag slices or coordinates with the store.
func (p *Place) Clone() *Place {
	cp := *p
	cp.Tags = slices.Clone(p.Tags)
	if p.Location != nil {
		loc := *p.Location
		cp.Location = &loc
	}

	return &cp
}

// SortKey selects the descending order used when listing places.
type SortKey string

const (
	SortNewest   SortKey = "Newest"
	SortName     SortKey = "Name"
	SortFood     SortKey = "Food"
	SortService  SortKey = "Service"
	SortLocation SortKey = "Location"
	SortPrice    SortKey = "Price"
)

// SortKeys lists every supported sort key.
var SortKeys = []SortKey{SortNewest, SortName, SortFood, SortService, SortLocation, SortPrice}

// ParseSortKey resolves a sort key, case-insensitively. An empty string means newest first.
func ParseSortKey(s string) (SortKey, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortNewest, true
	}
	for _, key := range SortKeys {
		if strings.EqualFold(string(key), s) {
			return key, true
		}
	}

	return "", false
}

// PlaceQuery filters and orders a place listing.
type PlaceQuery struct {
	Text         string   // Case-insensitive substring of name or city.
	RequiredTags []string // Normalized tags that must all be present.
	SortBy       SortKey
}

// Matches reports whether the place passes the text and tag filters.
func (q PlaceQuery) Matches(p *Place) bool {
	if text := strings.ToLower(strings.TrimSpace(q.Text)); text != "" {
		if !strings.Contains(strings.ToLower(p.Name), text) && !strings.Contains(strings.ToLower(p.City), text) {
			return false
		}
	}

	return p.HasTags(q.RequiredTags)
}

// SortPlaces sorts in place, descending by key. Equal keys keep their relative order.
func SortPlaces(places []*Place, key SortKey) {
	slices.SortStableFunc(places, func(a, b *Place) int {
		// b before a gives descending order
		switch key {
		case SortName:
			return strings.Compare(strings.ToLower(b.Name), strings.ToLower(a.Name))
		case SortFood:
			return cmp.Compare(b.Ratings.Food, a.Ratings.Food)
		case SortService:
			return cmp.Compare(b.Ratings.Service, a.Ratings.Service)
		case SortLocation:
			return cmp.Compare(b.Ratings.Location, a.Ratings.Location)
		case SortPrice:
			return cmp.Compare(b.Ratings.Price, a.Ratings.Price)
		default:
			return b.CreatedAt.Compare(a.CreatedAt)
		}
	})
}
