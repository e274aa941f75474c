// Package snapshot owns the single mutable cell of the system: the
// current record set, replaced wholesale on every successful reload.
package snapshot

import (
	"sync"
	"time"

	"github.com/de-tools/training-atlas/pkg/models/domain"
)

// Snapshot is one immutable fetch result. Seq orders fetches so a
// slow, stale response can never overwrite a newer one.
type Snapshot struct {
	Records   []domain.TrainingRecord
	Holidays  []domain.HolidayRecord
	Novelties []domain.NoveltyRecord
	FetchedAt time.Time
	Seq       uint64
}

// Empty reports whether the feed returned no rows at all. An empty
// feed is a valid state, distinct from "never loaded".
func (s Snapshot) Empty() bool {
	return len(s.Records) == 0 && len(s.Holidays) == 0 && len(s.Novelties) == 0
}

// Store holds the current snapshot. Readers get it by value; writers
// replace it atomically.
type Store struct {
	mu      sync.RWMutex
	current Snapshot
}

func NewStore() *Store {
	return &Store{}
}

// Current returns the snapshot in effect right now.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace commits snap unless a newer snapshot was already applied.
// It reports whether the commit happened.
func (s *Store) Replace(snap Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Seq <= s.current.Seq {
		return false
	}
	s.current = snap
	return true
}
