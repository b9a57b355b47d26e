package handler

import (
	"log/slog"
	"net/http"

	"trustbites/internal/delivery/api/response"
	"trustbites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedHandlerParams holds dependencies for FeedHandler, injected by Fx.
type FeedHandlerParams struct {
	fx.In

	FeedUC usecase.FeedUsecase
	Logger *slog.Logger
}

// FeedHandler serves the activity feed
type FeedHandler struct {
	feedUC usecase.FeedUsecase
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler
func NewFeedHandler(params FeedHandlerParams) *FeedHandler {
	return &FeedHandler{
		feedUC: params.FeedUC,
		logger: params.Logger,
	}
}

// ListRecent returns the feed, most recent first
func (h *FeedHandler) ListRecent(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	events, err := h.feedUC.ListRecent(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]FeedEventResponse, 0, len(events))
	for _, event := range events {
		result = append(result, FeedEventResponse{
			ID:        event.ID,
			Timestamp: event.Timestamp,
			Kind:      string(event.Kind),
			Text:      event.Text,
		})
	}

	return response.Success(c, http.StatusOK, result)
}
