package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/scopegen/internal/core/ports/driven"
)

// Ensure VersionStore implements the interface.
var _ driven.VersionStore = (*VersionStore)(nil)

// VersionStore keeps the version tracker in process memory. Counters are
// lost on exit.
type VersionStore struct {
	mu       sync.RWMutex
	counters map[string]int
	saves    int
	failWith error
}

// NewVersionStore creates an empty in-memory version store.
func NewVersionStore() *VersionStore {
	return &VersionStore{counters: make(map[string]int)}
}

// Load returns a copy of the stored tracker.
func (s *VersionStore) Load(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCounters(s.counters), nil
}

// Save replaces the stored tracker.
func (s *VersionStore) Save(_ context.Context, counters map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.counters = copyCounters(counters)
	s.saves++
	return nil
}

// Saves returns how many successful saves the store has seen.
func (s *VersionStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// FailSaves makes every subsequent Save return err. Pass nil to recover.
func (s *VersionStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func copyCounters(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
