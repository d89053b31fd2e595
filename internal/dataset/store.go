package dataset

import (
	"context"
	"sync"
)

// Store is the explicit process-lifetime cache of the loaded snapshot.
// It is populated once at startup and only replaced by an explicit
// Reload; there is no other invalidation rule.
//
// All readers share the same immutable snapshot, so the lock is only
// contended during a reload swap.
type Store struct {
	loader *Loader

	mu      sync.RWMutex
	snap    *Snapshot
	loadErr error
}

// NewStore creates a store backed by the given loader. No load happens
// until Load is called.
func NewStore(loader *Loader) *Store {
	return &Store{loader: loader}
}

// Load runs a full load pass and installs the result.
//
// On failure the previous snapshot, if any, stays installed so an
// operator reload with a bad data directory does not take down views
// that were already being served. The error is retained and reported
// by LastError.
func (s *Store) Load(ctx context.Context) error {
	snap, err := s.loader.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadErr = err
	if err != nil {
		return err
	}
	s.snap = snap
	return nil
}

// Snapshot returns the current snapshot, or ErrNotLoaded (wrapping
// nothing) when no load has ever succeeded. When the initial load failed,
// the load error is returned instead so callers can surface the cause.
func (s *Store) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap != nil {
		return s.snap, nil
	}
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return nil, ErrNotLoaded
}

// Table returns a single table from the current snapshot.
func (s *Store) Table(key string) (Table, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return Table{}, err
	}
	t, ok := snap.Table(key)
	if !ok {
		return Table{}, ErrUnknownDataset
	}
	return t, nil
}

// LastError returns the error from the most recent load attempt, or nil.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}
