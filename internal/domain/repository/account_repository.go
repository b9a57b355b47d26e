// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"trustbites/internal/domain/entity"
	"trustbites/internal/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account is stored under an email.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when an email is already taken.
	ErrAccountExists = errors.New("account already exists")
)

// AccountRepository stores accounts keyed by email.
type AccountRepository interface {
	// FindByEmail retrieves an account by its email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create stores a new account. Returns ErrAccountExists if the email is taken.
	Create(ctx context.Context, account *entity.Account) error

	// Rekey replaces the account stored under oldEmail with account, keyed by account.Email.
	// Returns ErrAccountNotFound if oldEmail is unknown and ErrAccountExists if the new
	// email belongs to another account.
	Rekey(ctx context.Context, oldEmail string, account *entity.Account) error
}
