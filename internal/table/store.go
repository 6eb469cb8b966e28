package table

import "sync/atomic"

// Store holds the table currently in use and supports replacing it as a unit.
// A reload builds a fresh table and swaps the reference; matches already in
// flight keep the table they started with.
type Store struct {
	current atomic.Pointer[Table]
}

// NewStore creates a store holding t
func NewStore(t *Table) *Store {
	s := &Store{}
	s.current.Store(t)
	return s
}

// Current returns the table in use
func (s *Store) Current() *Table {
	return s.current.Load()
}

// Swap atomically replaces the table in use
func (s *Store) Swap(t *Table) {
	s.current.Store(t)
}
