package stats

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store and Tracker.
type MemoryStore struct {
	mu    sync.RWMutex
	views map[string]int
}

// NewMemoryStore creates a store seeded with counts keyed by project id.
func NewMemoryStore(seed map[int]int) *MemoryStore {
	m := &MemoryStore{views: make(map[string]int, len(seed))}
	for id, n := range seed {
		if n > 0 {
			m.views[ViewsKey(id)] = n
		}
	}
	return m
}

// Views implements Store.
func (m *MemoryStore) Views(_ context.Context, projectID int) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.views[ViewsKey(projectID)], nil
}

// TrackProjectView implements Tracker.
func (m *MemoryStore) TrackProjectView(_ context.Context, projectID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views[ViewsKey(projectID)]++
	return nil
}
