package store

import (
	"context"
	"sync"

	"github.com/frankyi-gh/aplcheck/internal/core"
)

var _ core.RunStore = (*InMemoryRunStore)(nil)

// InMemoryRunStore keeps check runs in memory, in insertion order.
type InMemoryRunStore struct {
	mu   sync.RWMutex
	runs []core.CheckRun
	byID map[string]int
}

func NewInMemoryRunStore() *InMemoryRunStore {
	return &InMemoryRunStore{
		runs: make([]core.CheckRun, 0),
		byID: make(map[string]int),
	}
}

func (s *InMemoryRunStore) Save(_ context.Context, run core.CheckRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[run.ID] = len(s.runs)
	s.runs = append(s.runs, run)
	return nil
}

func (s *InMemoryRunStore) Get(_ context.Context, id string) (core.CheckRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return core.CheckRun{}, core.ErrRunNotFound
	}
	return s.runs[idx], nil
}

func (s *InMemoryRunStore) ListRecent(_ context.Context, limit int) ([]core.CheckRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.runs) {
		limit = len(s.runs)
	}

	recent := make([]core.CheckRun, 0, limit)
	for i := len(s.runs) - 1; i >= len(s.runs)-limit; i-- {
		recent = append(recent, s.runs[i])
	}
	return recent, nil
}
