package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state of one interactive session.
// It owns the identity, profile and navigation; the account, place and feed
// stores that belong to it live in the session manager.
type Session struct {
	ID         uuid.UUID  // Random session identifier carried in the session token.
	Identity   Identity   // Signed-in account, zero value when signed out.
	Profile    Profile    // Display fields of the signed-in account.
	Navigation Navigation // Current page, edit target and map selection.
	CreatedAt  time.Time  // When the session was opened.
	LastSeenAt time.Time  // Last time a use case ran against the session.
}

// NewSession returns a fresh signed-out session.
func NewSession(now time.Time) *Session {
	return &Session{
		ID:         uuid.New(),
		Navigation: NewNavigation(),
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// SignIn caches the account as the active identity.
func (s *Session) SignIn(account *Account) {
	s.Identity = Identity{
		SignedIn:  true,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	}
}

// SignOut clears identity and profile and returns to the landing state.
func (s *Session) SignOut() {
	s.Identity = Identity{}
	s.Profile = Profile{}
	s.Navigation.Reset()
}

// CurrentPage is the page the session should display.
func (s *Session) CurrentPage() Page {
	return s.Navigation.Current(s.Identity.SignedIn)
}
