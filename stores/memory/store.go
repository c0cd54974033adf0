package memory

import (
	"context"
	"sync"

	"github.com/weegigs/wee-counter/counter"
)

// Store keeps the counter in process memory. Nothing survives a restart.
type Store struct {
	lk    sync.RWMutex
	state counter.Counter
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Read(_ context.Context) (counter.Counter, error) {
	s.lk.RLock()
	defer s.lk.RUnlock()

	return s.state, nil
}

func (s *Store) Write(_ context.Context, state counter.Counter) error {
	s.lk.Lock()
	defer s.lk.Unlock()

	s.state = state
	return nil
}
