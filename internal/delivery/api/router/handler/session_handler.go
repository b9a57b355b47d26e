package handler

import (
	"log/slog"
	"net/http"
	"time"

	"trustbites/internal/delivery/api/response"
	"trustbites/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler opens and closes sessions.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// OpenSessionResponse carries the token that addresses the new session.
type OpenSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// Open starts a new, signed-out session.
func (h *SessionHandler) Open(c echo.Context) error {
	output, err := h.sessionUC.Open(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, OpenSessionResponse{
		SessionID: output.Session.ID,
		Token:     output.Token,
		CreatedAt: output.Session.CreatedAt,
	})
}

// Close discards the session of the request.
func (h *SessionHandler) Close(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessionUC.Close(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
