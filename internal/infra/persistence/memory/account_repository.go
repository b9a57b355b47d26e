// Package memory contains the in-memory implementation of the persistence layer.
// Every store belongs to exactly one session and is only touched while that session is locked.
package memory

import (
	"context"

	"trustbites/internal/domain/entity"
	"trustbites/internal/domain/repository"
)

// accountRepository implements repository.AccountRepository on a map keyed by email.
type accountRepository struct {
	accounts map[string]*entity.Account
}

// NewAccountRepository creates an empty account store.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		accounts: make(map[string]*entity.Account),
	}
}

// FindByEmail retrieves a copy of the account stored under email.
func (repo *accountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	account, ok := repo.accounts[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	cp := *account

	return &cp, nil
}

// Create stores a copy of the account.
func (repo *accountRepository) Create(_ context.Context, account *entity.Account) error {
	if _, ok := repo.accounts[account.Email]; ok {
		return repository.ErrAccountExists
	}
	cp := *account
	repo.accounts[account.Email] = &cp

	return nil
}

// Rekey moves the account from oldEmail to account.Email.
func (repo *accountRepository) Rekey(_ context.Context, oldEmail string, account *entity.Account) error {
	if _, ok := repo.accounts[oldEmail]; !ok {
		return repository.ErrAccountNotFound
	}
	if account.Email != oldEmail {
		if _, taken := repo.accounts[account.Email]; taken {
			return repository.ErrAccountExists
		}
		delete(repo.accounts, oldEmail)
	}
	cp := *account
	repo.accounts[account.Email] = &cp

	return nil
}
