package state

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/five82/swatch/internal/prefs"
)

// Snapshot represents the latest preference data available to the UI.
type Snapshot struct {
	Colors              map[string]string
	Theme               string
	Loaded              bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive load or save failures
	// Revision increases on every accepted change.
	Revision uint64
}

// IsFailing returns true when persistence has failed more than once in a row.
func (s Snapshot) IsFailing() bool {
	return s.ConsecutiveFailures >= 2
}

// Color returns the stored value for name.
func (s Snapshot) Color(name string) (string, bool) {
	v, ok := s.Colors[name]
	return v, ok
}

// Prefs converts the snapshot back into persistable preferences.
func (s Snapshot) Prefs() prefs.Prefs {
	return prefs.Prefs{Theme: s.Theme, Colors: maps.Clone(s.Colors)}
}

// Store coordinates concurrent updates from the file watcher, the debounced
// committers and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored preferences with a freshly loaded copy. When err
// is non-nil the previous data is kept but the error is recorded for
// visibility.
func (s *Store) Update(p prefs.Prefs, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.recordFailureLocked(err)
		return
	}

	changed := !s.snapshot.Loaded || s.snapshot.Theme != p.Theme || !maps.Equal(s.snapshot.Colors, p.Colors)
	s.snapshot.Colors = maps.Clone(p.Colors)
	s.snapshot.Theme = p.Theme
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	if changed {
		s.snapshot.Revision++
	}
}

// Set stores a single color and returns the full preferences to persist.
func (s *Store) Set(name, value string) prefs.Prefs {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Colors == nil {
		s.snapshot.Colors = make(map[string]string)
	}
	if s.snapshot.Colors[name] != value {
		s.snapshot.Colors[name] = value
		s.snapshot.Revision++
	}
	s.snapshot.LastUpdated = time.Now()
	return s.snapshot.Prefs()
}

// SetTheme stores the UI theme name and returns the full preferences to
// persist.
func (s *Store) SetTheme(name string) prefs.Prefs {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Theme != name {
		s.snapshot.Theme = name
		s.snapshot.Revision++
	}
	s.snapshot.LastUpdated = time.Now()
	return s.snapshot.Prefs()
}

// RecordSave records the outcome of writing the preferences file.
func (s *Store) RecordSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.recordFailureLocked(err)
		return
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

func (s *Store) recordFailureLocked(err error) {
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Colors = maps.Clone(s.snapshot.Colors)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
