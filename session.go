package invoice

import "sync"

// Session owns the current ledger of one editing session.
//
// It is the only place where the current snapshot changes. Transitions are
// applied one at a time, so a Session can be shared between goroutines.
type Session struct {
	mu     sync.Mutex
	ledger Ledger
}

// NewSession starts a session on ledger l.
func NewSession(l Ledger) *Session {
	return &Session{ledger: l}
}

// Ledger returns the current snapshot.
func (s *Session) Ledger() Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger
}

// Apply applies ops in order and returns the resulting snapshot.
func (s *Session) Apply(ops ...Operation) Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, op := range ops {
		s.ledger = op.Apply(s.ledger)
	}
	return s.ledger
}
