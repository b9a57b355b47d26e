// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// Account is a registered person, keyed by email within one session.
type Account struct {
	Email        string    // Unique key of the account. Re-keyed when the profile email changes.
	PasswordHash string    // Salted bcrypt hash of the password.
	FirstName    string    // Required first name.
	LastName     string    // Required last name.
	City         string    // Optional home city given at sign-up.
	FavoriteFood string    // Optional favorite food given at sign-up.
	Bio          string    // Optional free-text bio.
	CreatedAt    time.Time // Timestamp of the sign-up.
	UpdatedAt    time.Time // Timestamp of the last profile edit.
}

// FullName joins first and last name the way it is shown in the feed and profile.
func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Identity is a cached copy of the signed-in account.
type Identity struct {
	SignedIn  bool
	Email     string
	FirstName string
	LastName  string
}

// Profile holds the display fields of the active session.
type Profile struct {
	DisplayName string
	Bio         string
	Avatar      string // base64 encoded JPEG, empty when no avatar was uploaded
}
