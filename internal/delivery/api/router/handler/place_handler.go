package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"trustbites/internal/delivery/api/response"
	"trustbites/internal/domain/entity"
	"trustbites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	PlaceUC usecase.PlaceUsecase
	Logger  *slog.Logger
}

// PlaceHandler holds dependencies for place-related handlers
type PlaceHandler struct {
	placeUC usecase.PlaceUsecase
	logger  *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{
		placeUC: params.PlaceUC,
		logger:  params.Logger,
	}
}

// PlaceRequest represents the JSON body for creating or editing a place.
// Multipart forms carry the same fields flat, with tags comma separated and a "photo" file.
type PlaceRequest struct {
	Name     string              `json:"name"`
	City     string              `json:"city"`
	Ratings  RatingsPayload      `json:"ratings"`
	Notes    string              `json:"notes"`
	Tags     []string            `json:"tags"`
	Location *CoordinatesPayload `json:"location"`
}

// placeForm is a decoded place request plus its optional photo.
type placeForm struct {
	PlaceRequest
	photo []byte
}

func (h *PlaceHandler) readPlaceForm(c echo.Context) (*placeForm, error) {
	if !isMultipart(c) {
		var form placeForm
		if err := bindAndValidate(c, &form.PlaceRequest); err != nil {
			return nil, err
		}

		return &form, nil
	}

	ratings, err := formRatings(c)
	if err != nil {
		return nil, err
	}
	photo, err := readUpload(c, "photo")
	if err != nil {
		return nil, err
	}

	return &placeForm{
		PlaceRequest: PlaceRequest{
			Name:    c.FormValue("name"),
			City:    c.FormValue("city"),
			Ratings: ratings,
			Notes:   c.FormValue("notes"),
			Tags:    entity.SplitTags(c.FormValue("tags")),
		},
		photo: photo,
	}, nil
}

// CreatePlace handles adding a place
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	form, err := h.readPlaceForm(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreatePlaceInput{
		SessionID: id,
		Name:      form.Name,
		City:      form.City,
		Ratings:   form.Ratings.toEntity(),
		Notes:     form.Notes,
		Tags:      form.Tags,
		Photo:     form.photo,
	}
	if form.Location != nil {
		input.Location = &entity.Coordinates{Lat: form.Location.Lat, Lon: form.Location.Lng}
	}

	place, err := h.placeUC.Create(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPlaceResponse(place))
}

// UpdatePlace handles editing a place
func (h *PlaceHandler) UpdatePlace(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	placeID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	form, err := h.readPlaceForm(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	place, err := h.placeUC.Update(c.Request().Context(), &usecase.UpdatePlaceInput{
		SessionID: id,
		PlaceID:   placeID,
		Name:      form.Name,
		City:      form.City,
		Ratings:   form.Ratings.toEntity(),
		Notes:     form.Notes,
		Tags:      form.Tags,
		Photo:     form.photo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponse(place))
}

// DeletePlace removes a place. Deleting an unknown id reports deleted=false.
func (h *PlaceHandler) DeletePlace(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	placeID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deleted, err := h.placeUC.Delete(c.Request().Context(), id, placeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (h *PlaceHandler) GetPlace(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	placeID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	place, err := h.placeUC.Get(c.Request().Context(), id, placeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponse(place))
}

// ListPlaces handles GET /places?q=&tags=a,b&sort=
func (h *PlaceHandler) ListPlaces(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var tags []string
	for _, raw := range c.QueryParams()["tags"] {
		tags = append(tags, entity.SplitTags(raw)...)
	}

	places, err := h.placeUC.List(c.Request().Context(), &usecase.ListPlacesInput{
		SessionID: id,
		Query:     strings.TrimSpace(c.QueryParam("q")),
		Tags:      tags,
		SortBy:    c.QueryParam("sort"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponses(places))
}

// ListTags returns every tag in use
func (h *PlaceHandler) ListTags(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tags, err := h.placeUC.Tags(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string][]string{
		"tags":       tags,
		"predefined": entity.PredefinedTags,
	})
}

// ShareQR returns the QR code of a place as a PNG image
func (h *PlaceHandler) ShareQR(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	placeID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.placeUC.ShareQR(c.Request().Context(), id, placeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+placeID.String()+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}

