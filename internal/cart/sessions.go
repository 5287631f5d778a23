package cart

import "sync"

// Sessions maps a session id to its cart store, creating stores on
// first touch. Stores live for the process lifetime only; nothing is
// persisted across restarts by design.
type Sessions struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewSessions() *Sessions {
	return &Sessions{stores: make(map[string]*Store)}
}

// Get returns the store for the session, creating it if needed.
func (s *Sessions) Get(id string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, ok := s.stores[id]
	if !ok {
		store = NewStore()
		s.stores[id] = store
	}
	return store
}
