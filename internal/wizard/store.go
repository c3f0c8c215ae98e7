package wizard

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionTTL matches the auth-token lifetime; abandoned wizards are
// swept after it elapses. In-progress applications do not survive a
// server restart.
const SessionTTL = 24 * time.Hour

var ErrSessionNotFound = errors.New("wizard session not found")

type session struct {
	wizard    *Wizard
	createdAt time.Time
}

// Store keeps in-flight wizards in memory keyed by an opaque id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Start creates a wizard for the given job and returns its session id.
func (s *Store) Start(jobID string) (string, *Wizard) {
	id := uuid.NewString()
	w := New(jobID)
	s.mu.Lock()
	s.sessions[id] = &session{wizard: w, createdAt: s.now()}
	s.mu.Unlock()
	return id, w
}

// Get returns the wizard for an id, or ErrSessionNotFound when the id
// is unknown or the session has expired.
func (s *Store) Get(id string) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.now().Sub(sess.createdAt) > SessionTTL {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	return sess.wizard, nil
}

// Remove drops a session, typically after Success.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Sweep removes expired sessions; call it periodically.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if s.now().Sub(sess.createdAt) > SessionTTL {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
