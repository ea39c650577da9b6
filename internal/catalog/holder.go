package catalog

import "sync/atomic"

// Holder publishes the current catalog snapshot. Readers never block;
// a reload swaps the whole snapshot
type Holder struct {
	current atomic.Pointer[Catalog]
}

// NewHolder creates a Holder around an initial snapshot (may be nil)
func NewHolder(c *Catalog) *Holder {
	h := &Holder{}
	if c != nil {
		h.current.Store(c)
	}
	return h
}

// Get returns the current snapshot, or nil if none was ever loaded
func (h *Holder) Get() *Catalog {
	return h.current.Load()
}

// Set replaces the current snapshot
func (h *Holder) Set(c *Catalog) {
	h.current.Store(c)
}
