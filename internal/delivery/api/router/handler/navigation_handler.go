package handler

import (
	"log/slog"
	"net/http"

	"trustbites/internal/delivery/api/response"
	"trustbites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NavigationHandlerParams holds dependencies for NavigationHandler, injected by Fx.
type NavigationHandlerParams struct {
	fx.In

	NavigationUC usecase.NavigationUsecase
	Logger       *slog.Logger
}

// NavigationHandler exposes the page state machine of a session
type NavigationHandler struct {
	navigationUC usecase.NavigationUsecase
	logger       *slog.Logger
}

// NewNavigationHandler is the constructor for NavigationHandler
func NewNavigationHandler(params NavigationHandlerParams) *NavigationHandler {
	return &NavigationHandler{
		navigationUC: params.NavigationUC,
		logger:       params.Logger,
	}
}

// NavigateRequest represents the request body for changing page
type NavigateRequest struct {
	Page string `json:"page" validate:"required"`
}

func (h *NavigationHandler) Current(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.navigationUC.Current(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNavigationResponse(state))
}

func (h *NavigationHandler) Navigate(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req NavigateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.navigationUC.Navigate(c.Request().Context(), id, req.Page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNavigationResponse(state))
}

func (h *NavigationHandler) BeginEdit(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	placeID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.navigationUC.BeginEdit(c.Request().Context(), id, placeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNavigationResponse(state))
}

func (h *NavigationHandler) CancelEdit(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.navigationUC.CancelEdit(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNavigationResponse(state))
}
