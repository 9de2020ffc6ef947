package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	store    *Store
	lastSeen time.Time
}

// Manager owns one cart store per active storefront session and evicts
// sessions that stay idle longer than the configured TTL. There is no
// durable persistence: a session's cart lives and dies with the process.
type Manager struct {
	mu       sync.Mutex
	idleTTL  time.Duration
	sessions map[string]*session
}

func NewManager(idleTTL time.Duration) *Manager {
	return &Manager{
		idleTTL:  idleTTL,
		sessions: make(map[string]*session),
	}
}

// Get returns the store for sessionID and refreshes its idle timer.
func (m *Manager) Get(sessionID string) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, false
	}
	s.lastSeen = time.Now()
	return s.store, true
}

// GetOrCreate returns the existing session's store, or starts a fresh
// session when the id is empty or unknown. The returned id is the one the
// client must present on subsequent calls.
func (m *Manager) GetOrCreate(sessionID string) (string, *Store) {
	if sessionID != "" {
		if store, ok := m.Get(sessionID); ok {
			return sessionID, store
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	s := &session{store: NewStore(), lastSeen: time.Now()}
	m.sessions[id] = s
	return id, s.store
}

// ActiveSessions returns the number of sessions currently held.
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// StartCleanupLoop evicts idle sessions once per interval. Run it in a
// goroutine; it never returns.
func (m *Manager) StartCleanupLoop(interval time.Duration) {
	for {
		time.Sleep(interval)
		m.EvictIdle()
	}
}

// EvictIdle drops every session idle for longer than the TTL.
func (m *Manager) EvictIdle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if time.Since(s.lastSeen) > m.idleTTL {
			delete(m.sessions, id)
		}
	}
}
