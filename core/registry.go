package core

import (
	"errors"

	"owslave/protocol"
)

// Registry is the fixed device-class table. It is built once from the
// full set of compiled-in classes and never mutated afterwards; there is
// no insertion or removal API. Class ids are the table indices.
type Registry struct {
	entries []Entry
}

// NewRegistry validates the composed table and freezes it. Every entry
// must carry a class implementation and a maximum size within the
// message window; an alert-enabled build additionally requires an alert
// reporter on every entry.
func NewRegistry(entries []Entry) (*Registry, error) {
	for i, e := range entries {
		if e.Class == nil {
			return nil, errors.New("registry: class " + itoa(i) + " has no implementation")
		}
		if e.MaxSize > protocol.MaxMessage {
			return nil, errors.New("registry: class " + itoa(i) + " max size exceeds message window")
		}
		if err := validateEntry(i, e); err != nil {
			return nil, err
		}
	}

	r := &Registry{entries: make([]Entry, len(entries))}
	copy(r.entries, entries)
	return r, nil
}

// Len returns the number of registered classes. Valid ids are [0, Len).
func (r *Registry) Len() int {
	return len(r.entries)
}

// Lookup resolves a class id to its table entry. An id outside the table
// is the caller's error; Lookup reports it with ok=false rather than
// reaching a class.
func (r *Registry) Lookup(id uint8) (*Entry, bool) {
	if int(id) >= len(r.entries) {
		return nil, false
	}
	return &r.entries[id], true
}

// MaxSize returns the per-class transfer limit, or 0 for an unknown id.
func (r *Registry) MaxSize(id uint8) uint8 {
	if int(id) >= len(r.entries) {
		return 0
	}
	return r.entries[id].MaxSize
}

// Init runs every class's one-time setup in id order. Called once,
// before the first exchange.
func (r *Registry) Init() {
	for i := range r.entries {
		r.entries[i].Class.Init()
	}
}

// PollAll gives every class one cooperative work slice, in id order.
func (r *Registry) PollAll() {
	for i := range r.entries {
		r.entries[i].Class.Poll()
	}
}
