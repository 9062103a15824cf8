package web

import (
	"sync"
	"time"

	"github.com/etnz/invoice"
	"github.com/google/uuid"
)

// sessionStore keeps the editing session of each browser in memory.
type sessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	max      int // 0 means unlimited
	now      func() time.Time
	sessions map[string]*entry
}

type entry struct {
	session  *invoice.Session
	lastSeen time.Time
}

func newSessionStore(ttl time.Duration, max int) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		max:      max,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// get returns the live session with this id.
func (s *sessionStore) get(id string) (*invoice.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.expired(e, now) {
		delete(s.sessions, id)
		return nil, false
	}
	e.lastSeen = now
	return e.session, true
}

// create starts a seeded session. It evicts the expired sessions, then the
// least recently used ones while the store is full.
func (s *sessionStore) create() (string, *invoice.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, e := range s.sessions {
		if s.expired(e, now) {
			delete(s.sessions, id)
		}
	}
	for s.max > 0 && len(s.sessions) >= s.max {
		s.evictOldest()
	}
	id := uuid.NewString()
	session := invoice.NewSession(invoice.SeedLedger())
	s.sessions[id] = &entry{session: session, lastSeen: now}
	return id, session
}

func (s *sessionStore) evictOldest() {
	var oldest string
	var seen time.Time
	for id, e := range s.sessions {
		if oldest == "" || e.lastSeen.Before(seen) {
			oldest, seen = id, e.lastSeen
		}
	}
	delete(s.sessions, oldest)
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *sessionStore) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}
