package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ordemia/ordemia/pkg/order"
	"github.com/ordemia/ordemia/pkg/session"
)

var _ session.Store = (*Store)(nil)

type entry struct {
	result *order.Result

	expires time.Time
}

type Store struct {
	mu sync.RWMutex

	entries map[string]entry
}

func New() *Store {
	s := &Store{
		entries: map[string]entry{},
	}

	go s.janitor()

	return s
}

func (s *Store) Put(ctx context.Context, id string, result *order.Result, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = entry{
		result: result,

		expires: time.Now().Add(ttl),
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*order.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]

	if !ok || time.Now().After(e.expires) {
		return nil, session.ErrNotFound
	}

	return e.result, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)

	return nil
}

func (s *Store) janitor() {
	for range time.Tick(time.Minute) {
		now := time.Now()

		s.mu.Lock()

		for id, e := range s.entries {
			if now.After(e.expires) {
				delete(s.entries, id)
			}
		}

		s.mu.Unlock()
	}
}
