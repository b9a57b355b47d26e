// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"trustbites/internal/domain/entity"
	domainerrors "trustbites/internal/domain/errors"
	"trustbites/internal/domain/repository"
	"trustbites/internal/domain/service"
	"trustbites/internal/errors"
	"trustbites/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// clock returns the current time in UTC. Tests replace it.
type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// newValidator creates the validator shared by every service.
func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// validateInput runs the struct tags of input and turns failures into ErrValidationFailed.
func validateInput(v *validator.Validate, input any) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate input")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := humanizeField(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "contains":
		return fmt.Sprintf("%s must contain %q", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// humanizeField turns "FirstName" into "first name".
func humanizeField(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}

func validateRatings(r entity.Ratings) error {
	if !r.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("ratings must be between %d and %d", entity.MinRating, entity.MaxRating))
	}

	return nil
}

// inSession runs fn with exclusive access to the session and maps a missing session to its domain error.
func inSession(ctx context.Context, sessions repository.SessionManager, sessionID uuid.UUID, fn func(scope repository.SessionScope) error) error {
	err := sessions.Execute(ctx, sessionID, fn)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return domainerrors.ErrSessionNotFound.WrapMessage("failed to resolve session")
	}

	return err
}

func requireSignedIn(scope repository.SessionScope) error {
	if !scope.Session().Identity.SignedIn {
		return domainerrors.ErrNotSignedIn
	}

	return nil
}

// feedRecorder appends activity events and counts them.
type feedRecorder struct {
	metrics service.Metrics
	now     clock
}

func (r *feedRecorder) record(ctx context.Context, feed repository.FeedRepository, kind entity.FeedKind, text string) error {
	event := &entity.FeedEvent{
		ID:        uuid.New(),
		Timestamp: r.now(),
		Kind:      kind,
		Text:      text,
	}
	if err := feed.Append(ctx, event); err != nil {
		return errors.Wrap(err, "failed to append feed event")
	}
	r.metrics.FeedEvent(string(kind))

	return nil
}

// navigationState snapshots the navigation of a session. Signed-out sessions report the landing page.
func navigationState(session *entity.Session) *usecase.NavigationState {
	state := &usecase.NavigationState{
		SignedIn: session.Identity.SignedIn,
		Identity: session.Identity,
		Page:     session.CurrentPage(),
	}
	if !state.SignedIn {
		return state
	}

	if target := session.Navigation.EditTarget; target != nil {
		id := *target
		state.EditTarget = &id
	}
	if click := session.Navigation.LastMapClick; click != nil {
		cp := *click
		state.LastMapClick = &cp
	}

	return state
}
