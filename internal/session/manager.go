package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager is the in-memory session store. Sessions live for the process
// lifetime only; there is deliberately no persistence across restarts.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates an empty session store.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create makes a fresh session and registers it.
func (m *Manager) Create() *Session {
	sess := newSession()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return sess
}

// Get returns the session with the given id.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// GetOrCreate returns the session with the given id, or a fresh one when the
// id is unknown (e.g. the process restarted since the cookie was issued).
func (m *Manager) GetOrCreate(id uuid.UUID) *Session {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	m.mu.Unlock()
	if ok {
		return sess
	}
	return m.Create()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
