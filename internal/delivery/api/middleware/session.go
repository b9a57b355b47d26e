package middleware

import (
	"strings"

	"trustbites/internal/delivery/api/response"
	deliverycontext "trustbites/internal/delivery/context"
	domainerrors "trustbites/internal/domain/errors"
	"trustbites/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const keyNavigation = "navigation"

// SessionMiddleware resolves the bearer session token of a request.
type SessionMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessionUC usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{sessionUC: sessionUC}
}

// Authenticate validates the token and stores the session id and its navigation state on the context.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_SESSION_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_SESSION_TOKEN", "Invalid token format, must be Bearer token")
		}

		sessionID, state, err := m.sessionUC.Resolve(c.Request().Context(), tokenString)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetSessionID(c, sessionID)
		c.Set(keyNavigation, state)

		return next(c)
	}
}

// RequireSignedIn rejects sessions without a signed-in account.
// It must be used AFTER the Authenticate middleware.
func (m *SessionMiddleware) RequireSignedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		state, ok := c.Get(keyNavigation).(*usecase.NavigationState)
		if !ok || !state.SignedIn {
			return response.AppError(c, domainerrors.ErrNotSignedIn)
		}

		return next(c)
	}
}

// GetSessionID returns the session resolved by Authenticate.
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetSessionID(c)
}
