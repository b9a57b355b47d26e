package memory

import (
	"context"
	"sync"
	"time"

	"trustbites/internal/domain/entity"
	"trustbites/internal/domain/repository"

	"github.com/google/uuid"
)

// sessionState is one live session together with the stores it owns.
// mu is held for the whole duration of a use case.
type sessionState struct {
	mu       sync.Mutex
	closed   bool
	session  *entity.Session
	accounts repository.AccountRepository
	places   repository.PlaceRepository
	feed     repository.FeedRepository
}

func (s *sessionState) Session() *entity.Session                   { return s.session }
func (s *sessionState) AccountRepo() repository.AccountRepository { return s.accounts }
func (s *sessionState) PlaceRepo() repository.PlaceRepository     { return s.places }
func (s *sessionState) FeedRepo() repository.FeedRepository       { return s.feed }

// sessionManager implements repository.SessionManager.
// The manager lock only guards the map; work on a session happens under the session's own lock,
// so distinct sessions never wait on each other.
type sessionManager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionState
	now      func() time.Time
}

// NewSessionManager creates a manager with no sessions.
func NewSessionManager() repository.SessionManager {
	return newSessionManager(func() time.Time { return time.Now().UTC() })
}

func newSessionManager(now func() time.Time) *sessionManager {
	return &sessionManager{
		sessions: make(map[uuid.UUID]*sessionState),
		now:      now,
	}
}

// Open creates a signed-out session with empty stores.
func (m *sessionManager) Open(_ context.Context) (*entity.Session, error) {
	state := &sessionState{
		session:  entity.NewSession(m.now()),
		accounts: NewAccountRepository(),
		places:   NewPlaceRepository(),
		feed:     NewFeedRepository(),
	}

	m.mu.Lock()
	m.sessions[state.session.ID] = state
	m.mu.Unlock()

	cp := *state.session

	return &cp, nil
}

// Execute locks the session, refreshes its last-seen time and runs fn.
func (m *sessionManager) Execute(ctx context.Context, sessionID uuid.UUID, fn func(scope repository.SessionScope) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	state, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return repository.ErrSessionNotFound
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	// closed while we were waiting for the lock
	if state.closed {
		return repository.ErrSessionNotFound
	}
	state.session.LastSeenAt = m.now()

	return fn(state)
}

// Close removes the session. Work already running on it finishes first.
func (m *sessionManager) Close(_ context.Context, sessionID uuid.UUID) error {
	m.mu.Lock()
	state, ok := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	if !ok {
		return repository.ErrSessionNotFound
	}

	state.mu.Lock()
	state.closed = true
	state.mu.Unlock()

	return nil
}

// Sweep closes every session last seen before idleSince. Busy sessions are skipped.
func (m *sessionManager) Sweep(_ context.Context, idleSince time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	closed := 0
	for id, state := range m.sessions {
		if !state.mu.TryLock() {
			continue
		}
		if state.session.LastSeenAt.Before(idleSince) {
			state.closed = true
			delete(m.sessions, id)
			closed++
		}
		state.mu.Unlock()
	}

	return closed, nil
}

func (m *sessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
