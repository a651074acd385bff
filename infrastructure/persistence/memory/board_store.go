// Package memory holds board snapshots in process memory. It backs the
// "memory" storage driver and the test suites.
package memory

import (
	"context"
	"sync"

	"colorboard/domain/core/aggregates"
)

// BoardStore implements ports.BoardStore in memory
type BoardStore struct {
	mu    sync.RWMutex
	slots map[string]aggregates.Snapshot
}

// NewBoardStore creates an empty in-memory board store
func NewBoardStore() *BoardStore {
	return &BoardStore{slots: make(map[string]aggregates.Snapshot)}
}

// Load returns the stored snapshot for the client, (nil, nil) when absent
func (s *BoardStore) Load(ctx context.Context, clientID string) (*aggregates.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.slots[clientID]
	if !ok {
		return nil, nil
	}
	return &snapshot, nil
}

// Save overwrites the client's stored snapshot
func (s *BoardStore) Save(ctx context.Context, clientID string, snapshot aggregates.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[clientID] = snapshot
	return nil
}

// Delete removes the client's stored snapshot
func (s *BoardStore) Delete(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, clientID)
	return nil
}
