package catalog

import "sync/atomic"

// Store holds the current catalog. Re-imports build a new catalog and swap it in whole,
// so readers see either the old or the new catalog and never a mix.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store holding c, or an empty catalog if c is nil
func NewStore(c *Catalog) *Store {
	s := &Store{}
	if c == nil {
		c = Empty()
	}
	s.current.Store(c)
	return s
}

// Load returns the current catalog
func (s *Store) Load() *Catalog {
	return s.current.Load()
}

// Swap installs c and returns the catalog it replaced
func (s *Store) Swap(c *Catalog) *Catalog {
	if c == nil {
		c = Empty()
	}
	return s.current.Swap(c)
}
