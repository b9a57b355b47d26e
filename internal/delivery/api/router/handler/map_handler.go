package handler

import (
	"log/slog"
	"net/http"

	"trustbites/internal/delivery/api/response"
	domainerrors "trustbites/internal/domain/errors"
	"trustbites/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const defaultNearbyRadiusMeters = 1000.0

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// MapHandler holds dependencies for the map page handlers
type MapHandler struct {
	mapUC  usecase.MapUsecase
	logger *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		mapUC:  params.MapUC,
		logger: params.Logger,
	}
}

// SelectPointRequest represents a map click
type SelectPointRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

// PinRequest represents the request body for adding a place at the selected point
type PinRequest struct {
	Name    string         `json:"name"`
	City    string         `json:"city"`
	Ratings RatingsPayload `json:"ratings"`
	Notes   string         `json:"notes"`
	Tags    []string       `json:"tags"`
}

// View returns the map center and pins, optionally limited to
// ?min_lat=&min_lng=&max_lat=&max_lng=
func (h *MapHandler) View(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	bound, err := boundFromQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.mapUC.View(c.Request().Context(), id, bound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := MapViewResponse{
		Center: CoordinatesPayload{Lat: view.Center.Lat, Lng: view.Center.Lon},
		Pins:   make([]PinResponse, 0, len(view.Pins)),
	}
	if view.Selected != nil {
		resp.Selected = &CoordinatesPayload{Lat: view.Selected.Lat, Lng: view.Selected.Lng}
	}
	for _, pin := range view.Pins {
		resp.Pins = append(resp.Pins, PinResponse{
			PlaceID: pin.PlaceID,
			Name:    pin.Name,
			City:    pin.City,
			Lat:     pin.Lat,
			Lng:     pin.Lon,
		})
	}

	return response.Success(c, http.StatusOK, resp)
}

// SelectPoint remembers a map click
func (h *MapHandler) SelectPoint(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SelectPointRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	click, err := h.mapUC.SelectPoint(c.Request().Context(), id, *req.Lat, *req.Lng)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CoordinatesPayload{Lat: click.Lat, Lng: click.Lng})
}

// ClearPoint forgets the map click
func (h *MapHandler) ClearPoint(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.mapUC.ClearPoint(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// PinFromMap adds a place at the selected point
func (h *MapHandler) PinFromMap(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PinRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	place, err := h.mapUC.PinFromMap(c.Request().Context(), &usecase.PinFromMapInput{
		SessionID: id,
		Name:      req.Name,
		City:      req.City,
		Ratings:   req.Ratings.toEntity(),
		Notes:     req.Notes,
		Tags:      req.Tags,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPlaceResponse(place))
}

// Nearby lists places around ?lat=&lng=, within ?radius= meters
func (h *MapHandler) Nearby(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var lat, lng float64
	radius := defaultNearbyRadiusMeters
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		Float64("radius", &radius).
		BindError(); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("lat and lng are required numbers"))
	}

	nearby, err := h.mapUC.Nearby(c.Request().Context(), id, lat, lng, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]NearbyPlaceResponse, 0, len(nearby))
	for _, n := range nearby {
		result = append(result, NearbyPlaceResponse{
			Place:          toPlaceResponse(n.Place),
			DistanceMeters: n.DistanceMeters,
		})
	}

	return response.Success(c, http.StatusOK, result)
}

// boundFromQuery reads an optional bounding box. Either all four corners are given or none.
func boundFromQuery(c echo.Context) (*orb.Bound, error) {
	names := []string{"min_lat", "min_lng", "max_lat", "max_lng"}
	given := 0
	for _, name := range names {
		if c.QueryParam(name) != "" {
			given++
		}
	}
	if given == 0 {
		return nil, nil
	}

	var minLat, minLng, maxLat, maxLng float64
	err := echo.QueryParamsBinder(c).
		MustFloat64("min_lat", &minLat).
		MustFloat64("min_lng", &minLng).
		MustFloat64("max_lat", &maxLat).
		MustFloat64("max_lng", &maxLng).
		BindError()
	if err != nil || given != len(names) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("min_lat, min_lng, max_lat and max_lng must be given together")
	}

	bound := orb.Bound{Min: orb.Point{minLng, minLat}, Max: orb.Point{maxLng, maxLat}}

	return &bound, nil
}
