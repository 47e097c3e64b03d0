package rowing

import (
	"sync"
	"time"
)

// FreshWindow is how old a snapshot may be and still prefill set results.
const FreshWindow = 5 * time.Minute

// Store keeps the latest telemetry snapshot in memory. The bridge device
// overwrites it on every frame; nothing is persisted.
type Store struct {
	mu       sync.RWMutex
	latest   Snapshot
	recorded bool
}

// NewStore creates an empty snapshot store.
func NewStore() *Store {
	return &Store{}
}

// Record replaces the stored snapshot.
func (s *Store) Record(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = snap
	s.recorded = true
}

// Latest returns the stored snapshot and whether one has been recorded.
func (s *Store) Latest() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.recorded
}

// Fresh returns the stored snapshot only when it is younger than maxAge.
func (s *Store) Fresh(now time.Time, maxAge time.Duration) (Snapshot, bool) {
	snap, ok := s.Latest()
	if !ok || now.Sub(snap.Timestamp) > maxAge {
		return Snapshot{}, false
	}
	return snap, true
}
