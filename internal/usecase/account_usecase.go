// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"trustbites/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to sign up.
type RegisterInput struct {
	SessionID    uuid.UUID `validate:"required"`
	FirstName    string    `validate:"required"`
	LastName     string    `validate:"required"`
	Email        string    `validate:"required,contains=@"`
	Password     string    `validate:"required"`
	City         string
	FavoriteFood string
	Bio          string
}

// LoginInput defines the data required to sign in.
type LoginInput struct {
	SessionID uuid.UUID `validate:"required"`
	Email     string
	Password  string
}

// UpdateProfileInput defines the editable account fields. The account edited is the signed-in one.
type UpdateProfileInput struct {
	SessionID uuid.UUID `validate:"required"`
	FirstName string    `validate:"required"`
	LastName  string    `validate:"required"`
	Email     string    `validate:"required,contains=@"`
	Bio       string
}

// --- Output DTOs ---

// ProfileOutput is the profile page of the signed-in account.
type ProfileOutput struct {
	Identity     entity.Identity
	DisplayName  string
	Bio          string
	Avatar       string
	City         string
	FavoriteFood string
}

// AccountUsecase defines the sign-up, sign-in and profile operations of a session.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)
	Login(ctx context.Context, input *LoginInput) (*entity.Account, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Account, error)
	SignOut(ctx context.Context, sessionID uuid.UUID) error
	GetProfile(ctx context.Context, sessionID uuid.UUID) (*ProfileOutput, error)
	UpdateAvatar(ctx context.Context, sessionID uuid.UUID, upload []byte) (*ProfileOutput, error)
}
