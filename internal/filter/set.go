// Package filter implements the named, toggleable chain of candidate-pool filters
// applied before a random build is drawn.
package filter

import "github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"

// Filter narrows candidate pools. Implementations must be pure: same pools and
// context in, same pools out.
type Filter interface {
	Name() string
	Apply(c parts.Candidates, ctx Context) parts.Candidates
}

// Context is what a filter may look at besides the pools themselves.
type Context struct {
	// Selection is the partial build known so far (the pinned parts).
	Selection map[parts.Slot]parts.Part
	// Set is the whole filter configuration being applied.
	Set Set
}

// Func adapts a plain function into a Filter.
type Func struct {
	name string
	fn   func(parts.Candidates, Context) parts.Candidates
}

// New wraps fn as a Filter named name.
func New(name string, fn func(parts.Candidates, Context) parts.Candidates) Func {
	return Func{name: name, fn: fn}
}

// Name returns the filter name.
func (f Func) Name() string { return f.name }

// Apply runs the wrapped function.
func (f Func) Apply(c parts.Candidates, ctx Context) parts.Candidates {
	return f.fn(c, ctx)
}

// Options control how Add stores a filter.
type Options struct {
	Enabled bool
	// Private filters always run when enabled, are hidden from List and ignore
	// Enable, Disable and Update.
	Private bool
}

// State is a stored filter with its flags.
type State struct {
	Filter  Filter
	Enabled bool
	Private bool
}

// Name returns the stored filter's name.
func (s State) Name() string {
	return s.Filter.Name()
}

// Set is an insertion-ordered collection of filters keyed by name.
// The zero value is empty and ready to use; every method returns a new Set.
type Set struct {
	entries []State
}

// NewSet returns an empty Set.
func NewSet() Set {
	return Set{}
}

// Add inserts f, or replaces the entry with the same name in place.
func (s Set) Add(f Filter, opts Options) Set {
	return s.put(State{Filter: f, Enabled: opts.Enabled, Private: opts.Private})
}

// Enable turns on the named public filter. Unknown and private names are ignored.
func (s Set) Enable(name string) Set {
	return s.toggle(name, true)
}

// Disable turns off the named public filter. Unknown and private names are ignored.
func (s Set) Disable(name string) Set {
	return s.toggle(name, false)
}

// Update stores state under its filter's name unless an existing entry with that
// name is private.
func (s Set) Update(state State) Set {
	if i := s.index(state.Name()); i >= 0 && s.entries[i].Private {
		return s
	}
	return s.put(state)
}

// List returns the public entries in insertion order.
func (s Set) List() []State {
	out := make([]State, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.Private {
			out = append(out, e)
		}
	}
	return out
}

// ContainEnabled reports whether any public entry is enabled. Private entries
// do not count.
func (s Set) ContainEnabled() bool {
	for _, e := range s.entries {
		if e.Enabled && !e.Private {
			return true
		}
	}
	return false
}

// IsEnabled reports whether name is a public entry that is enabled.
func (s Set) IsEnabled(name string) bool {
	i := s.index(name)
	return i >= 0 && s.entries[i].Enabled && !s.entries[i].Private
}

// Len counts public entries.
func (s Set) Len() int {
	return len(s.List())
}

// Apply folds every enabled entry, public and private, over c in insertion order.
// ctx.Set is replaced by s.
func (s Set) Apply(c parts.Candidates, ctx Context) parts.Candidates {
	ctx.Set = s
	out := c
	for _, e := range s.entries {
		if !e.Enabled {
			continue
		}
		out = e.Filter.Apply(out, ctx)
	}
	return out
}

func (s Set) toggle(name string, enabled bool) Set {
	i := s.index(name)
	if i < 0 || s.entries[i].Private {
		return s
	}
	next := s.clone()
	next.entries[i].Enabled = enabled
	return next
}

func (s Set) put(state State) Set {
	next := s.clone()
	if i := next.index(state.Name()); i >= 0 {
		next.entries[i] = state
		return next
	}
	next.entries = append(next.entries, state)
	return next
}

func (s Set) index(name string) int {
	for i, e := range s.entries {
		if e.Name() == name {
			return i
		}
	}
	return -1
}

func (s Set) clone() Set {
	return Set{entries: append([]State(nil), s.entries...)}
}
