package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"trustbites/internal/delivery/api/middleware"
	"trustbites/internal/delivery/api/response"
	domainerrors "trustbites/internal/domain/errors"
	"trustbites/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate binds the request body and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// sessionID returns the session resolved by the session middleware.
func sessionID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrSessionNotFound
	}

	return id, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// readUpload reads a multipart file field. A missing field yields nil.
func readUpload(c echo.Context, field string) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + field + " upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}

	return data, nil
}

// formInt parses an integer form value. An empty value is zero, which fails rating validation later.
func formInt(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a whole number")
	}

	return v, nil
}

// formRatings reads the four ratings of a multipart place form.
func formRatings(c echo.Context) (RatingsPayload, error) {
	var ratings RatingsPayload
	for name, target := range map[string]*int{
		"food":     &ratings.Food,
		"service":  &ratings.Service,
		"location": &ratings.Location,
		"price":    &ratings.Price,
	} {
		v, err := formInt(c, name)
		if err != nil {
			return RatingsPayload{}, err
		}
		*target = v
	}

	return ratings, nil
}
