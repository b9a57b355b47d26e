package handler

import (
	"time"

	"trustbites/internal/domain/entity"
	"trustbites/internal/usecase"

	"github.com/google/uuid"
)

// IdentityResponse is the signed-in account of a session.
type IdentityResponse struct {
	SignedIn  bool   `json:"signed_in"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// AccountResponse is an account without its password hash.
type AccountResponse struct {
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	City         string    `json:"city,omitempty"`
	FavoriteFood string    `json:"favorite_food,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileResponse is the profile page.
type ProfileResponse struct {
	Identity     IdentityResponse `json:"identity"`
	DisplayName  string           `json:"display_name"`
	Bio          string           `json:"bio"`
	Avatar       string           `json:"avatar,omitempty"`
	City         string           `json:"city,omitempty"`
	FavoriteFood string           `json:"favorite_food,omitempty"`
}

// RatingsPayload carries the four 1..5 scores in requests and responses.
type RatingsPayload struct {
	Food     int `json:"food" form:"food"`
	Service  int `json:"service" form:"service"`
	Location int `json:"location" form:"location"`
	Price    int `json:"price" form:"price"`
}

// CoordinatesPayload is a latitude/longitude pair.
type CoordinatesPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceResponse is a place as returned by the API.
type PlaceResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	City      string              `json:"city"`
	Ratings   RatingsPayload      `json:"ratings"`
	Notes     string              `json:"notes"`
	Tags      []string            `json:"tags"`
	Photo     string              `json:"photo,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	Location  *CoordinatesPayload `json:"location"`
}

// FeedEventResponse is one activity entry.
type FeedEventResponse struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
	Text      string    `json:"text"`
}

// NavigationResponse tells the client which page to show.
type NavigationResponse struct {
	SignedIn     bool                `json:"signed_in"`
	Identity     IdentityResponse    `json:"identity"`
	Page         string              `json:"page"`
	EditTarget   *uuid.UUID          `json:"edit_target,omitempty"`
	LastMapClick *CoordinatesPayload `json:"last_map_click,omitempty"`
}

// PinResponse is a located place on the map.
type PinResponse struct {
	PlaceID uuid.UUID `json:"place_id"`
	Name    string    `json:"name"`
	City    string    `json:"city"`
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`
}

// MapViewResponse is the map page.
type MapViewResponse struct {
	Center   CoordinatesPayload  `json:"center"`
	Selected *CoordinatesPayload `json:"selected,omitempty"`
	Pins     []PinResponse       `json:"pins"`
}

// NearbyPlaceResponse is a place with its distance from the query point.
type NearbyPlaceResponse struct {
	Place          PlaceResponse `json:"place"`
	DistanceMeters float64       `json:"distance_meters"`
}

func (r RatingsPayload) toEntity() entity.Ratings {
	return entity.Ratings{Food: r.Food, Service: r.Service, Location: r.Location, Price: r.Price}
}

func toIdentityResponse(identity entity.Identity) IdentityResponse {
	return IdentityResponse{
		SignedIn:  identity.SignedIn,
		Email:     identity.Email,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
	}
}

func toAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		Email:        account.Email,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		City:         account.City,
		FavoriteFood: account.FavoriteFood,
		Bio:          account.Bio,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}

func toProfileResponse(profile *usecase.ProfileOutput) ProfileResponse {
	return ProfileResponse{
		Identity:     toIdentityResponse(profile.Identity),
		DisplayName:  profile.DisplayName,
		Bio:          profile.Bio,
		Avatar:       profile.Avatar,
		City:         profile.City,
		FavoriteFood: profile.FavoriteFood,
	}
}

func toPlaceResponse(place *entity.Place) PlaceResponse {
	resp := PlaceResponse{
		ID:   place.ID,
		Name: place.Name,
		City: place.City,
		Ratings: RatingsPayload{
			Food:     place.Ratings.Food,
			Service:  place.Ratings.Service,
			Location: place.Ratings.Location,
			Price:    place.Ratings.Price,
		},
		Notes:     place.Notes,
		Tags:      place.Tags,
		Photo:     place.Photo,
		CreatedAt: place.CreatedAt,
		UpdatedAt: place.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if place.Location != nil {
		resp.Location = &CoordinatesPayload{Lat: place.Location.Lat, Lng: place.Location.Lon}
	}

	return resp
}

func toPlaceResponses(places []*entity.Place) []PlaceResponse {
	result := make([]PlaceResponse, 0, len(places))
	for _, place := range places {
		result = append(result, toPlaceResponse(place))
	}

	return result
}

func toNavigationResponse(state *usecase.NavigationState) NavigationResponse {
	resp := NavigationResponse{
		SignedIn:   state.SignedIn,
		Identity:   toIdentityResponse(state.Identity),
		Page:       string(state.Page),
		EditTarget: state.EditTarget,
	}
	if state.LastMapClick != nil {
		resp.LastMapClick = &CoordinatesPayload{Lat: state.LastMapClick.Lat, Lng: state.LastMapClick.Lng}
	}

	return resp
}
