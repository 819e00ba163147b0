package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager tracks all active sessions. All methods are safe for
// concurrent use; the sessions themselves are single-owner.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session // id → session
}

// NewManager creates an empty session Manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Add registers a new session for the given remote address.
//
// Precondition: remoteAddr must be non-empty.
// Postcondition: Returns a registered Session with a fresh unique ID, no
// active game, and an empty snapshot slot.
func (m *Manager) Add(remoteAddr string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess := &Session{
		ID:          uuid.New().String(),
		RemoteAddr:  remoteAddr,
		ConnectedAt: time.Now(),
	}
	m.sessions[sess.ID] = sess
	return sess
}

// Remove deregisters a session.
//
// Precondition: id must be non-empty.
// Postcondition: The session is removed. Returns an error if not found.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return fmt.Errorf("session %q not found", id)
	}
	delete(m.sessions, id)
	return nil
}

// Get returns the session for the given ID.
//
// Postcondition: Returns (session, true) if found, or (nil, false) otherwise.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// Count returns the number of connected sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
