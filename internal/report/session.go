package report

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// sessionTTL is how long an idle browser session is remembered.
const sessionTTL = 24 * time.Hour

type session struct {
	state State
	seen  time.Time
}

// Store remembers the last applied interaction state per browser session,
// keyed by the session cookie. It exists so page numbers can reset when the
// filter set changes between interactions. In-memory only: nothing survives
// a process restart, and each session has a single writer (its own browser).
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*session)}
}

// NewID mints a fresh session identifier.
func (s *Store) NewID() string {
	return uuid.NewString()
}

// Get returns the remembered state for a session.
func (s *Store) Get(id string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return State{}, false
	}
	sess.seen = time.Now()
	return sess.state, true
}

// Put replaces the remembered state for a session and prunes stale ones.
func (s *Store) Put(id string, state State) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{state: state, seen: now}
	for key, sess := range s.sessions {
		if now.Sub(sess.seen) > sessionTTL {
			delete(s.sessions, key)
		}
	}
}

// Drop forgets a session.
func (s *Store) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
