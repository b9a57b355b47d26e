package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestPlace(name, city string, food int, createdAt time.Time, tags ...string) *Place {
	return &Place{
		ID:        uuid.New(),
		Name:      name,
		City:      city,
		Ratings:   Ratings{Food: food, Service: 3, Location: 3, Price: 3},
		Tags:      tags,
		CreatedAt: createdAt,
	}
}

func names(places []*Place) []string {
	out := make([]string, 0, len(places))
	for _, p := range places {
		out = append(out, p.Name)
	}

	return out
}

func TestRatings_Valid(t *testing.T) {
	assert.True(t, Ratings{Food: 1, Service: 5, Location: 3, Price: 2}.Valid())
	assert.False(t, Ratings{Food: 0, Service: 5, Location: 3, Price: 2}.Valid())
	assert.False(t, Ratings{Food: 1, Service: 6, Location: 3, Price: 2}.Valid())
}

func TestParseSortKey(t *testing.T) {
	key, ok := ParseSortKey("")
	assert.True(t, ok)
	assert.Equal(t, SortNewest, key)

	key, ok = ParseSortKey("food")
	assert.True(t, ok)
	assert.Equal(t, SortFood, key)

	_, ok = ParseSortKey("distance")
	assert.False(t, ok)
}

func TestPlaceQuery_Matches(t *testing.T) {
	now := time.Now()
	tasca := newTestPlace("Tasca Verde", "Lisbon", 5, now, "Casual", "Pizza")
	osteria := newTestPlace("Osteria", "Milan", 4, now, "Romantic")
	lisboa := newTestPlace("Lisbon Grill", "Porto", 3, now, "Casual")

	q := PlaceQuery{Text: "  LISBON "}
	assert.True(t, q.Matches(tasca))
	assert.True(t, q.Matches(lisboa))
	assert.False(t, q.Matches(osteria))

	q = PlaceQuery{RequiredTags: []string{"Casual", "Pizza"}}
	assert.True(t, q.Matches(tasca))
	assert.False(t, q.Matches(lisboa))

	assert.True(t, PlaceQuery{}.Matches(osteria))
}

func TestSortPlaces_FoodIsDescendingAndStable(t *testing.T) {
	now := time.Now()
	places := []*Place{
		newTestPlace("A", "x", 3, now),
		newTestPlace("B", "x", 5, now),
		newTestPlace("C", "x", 3, now),
		newTestPlace("D", "x", 5, now),
		newTestPlace("E", "x", 1, now),
	}

	SortPlaces(places, SortFood)

	assert.Equal(t, []string{"B", "D", "A", "C", "E"}, names(places))
}

func TestSortPlaces_NameIsCaseInsensitive(t *testing.T) {
	now := time.Now()
	places := []*Place{
		newTestPlace("alpha", "x", 3, now),
		newTestPlace("Charlie", "x", 3, now),
		newTestPlace("bravo", "x", 3, now),
	}

	SortPlaces(places, SortName)

	assert.Equal(t, []string{"Charlie", "bravo", "alpha"}, names(places))
}

func TestSortPlaces_Newest(t *testing.T) {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	places := []*Place{
		newTestPlace("old", "x", 3, base),
		newTestPlace("new", "x", 3, base.Add(2*time.Second)),
		newTestPlace("mid", "x", 3, base.Add(time.Second)),
	}

	SortPlaces(places, SortNewest)

	assert.Equal(t, []string{"new", "mid", "old"}, names(places))
}

func TestPlace_CloneIsDeep(t *testing.T) {
	p := newTestPlace("A", "x", 3, time.Now(), "Casual")
	p.Location = &Coordinates{Lat: 1, Lon: 2}

	cp := p.Clone()
	cp.Tags[0] = "Changed"
	cp.Location.Lat = 9

	assert.Equal(t, "Casual", p.Tags[0])
	assert.Equal(t, 1.0, p.Location.Lat)
}

func TestCoordinates_PointRoundTrip(t *testing.T) {
	c := Coordinates{Lat: 38.7223, Lon: -9.1393}
	p := c.Point()

	assert.Equal(t, -9.1393, p.Lon())
	assert.Equal(t, 38.7223, p.Lat())
	assert.Equal(t, c, CoordinatesFromPoint(p))
}
