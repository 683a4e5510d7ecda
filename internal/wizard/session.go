package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"bannerval/internal/domain"
)

// Session is one browser's wizard. All state changes go through Apply.
type Session struct {
	ID string

	mu      sync.Mutex
	state   State
	updated time.Time
}

func newSession(id string) *Session {
	return &Session{ID: id, state: Initial(), updated: time.Now()}
}

// State returns a snapshot of the session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// UpdatedAt is the time of the last successful transition.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updated
}

// Apply reduces e into the session state. A rejected event leaves the state
// untouched.
func (s *Session) Apply(e Event) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := Reduce(s.state, e)
	if err != nil {
		return s.state, err
	}
	s.state = next
	s.updated = time.Now()
	return next, nil
}

// Store keeps sessions in memory, bounded by size and idle time. Nothing is
// persisted.
type Store struct {
	cache *expirable.LRU[string, *Session]
}

// NewStore builds a store holding at most capacity sessions, each dropped
// after ttl without access.
func NewStore(capacity int, ttl time.Duration) *Store {
	return &Store{cache: expirable.NewLRU[string, *Session](capacity, nil, ttl)}
}

// Create registers a new session in UPLOAD.
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString())
	s.cache.Add(sess.ID, sess)
	return sess
}

// Get returns the session and refreshes its idle timer.
func (s *Store) Get(id string) (*Session, error) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	s.cache.Add(id, sess)
	return sess, nil
}

// Delete drops the session. Unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.cache.Remove(id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}
