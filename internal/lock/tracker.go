// Package lock tracks the parts a user pinned before asking for a random build.
package lock

import (
	"fmt"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

// Tracker maps slots to pinned parts. The zero value pins nothing.
// Lock and Unlock return new trackers; a Tracker is never modified in place.
type Tracker struct {
	pinned map[parts.Slot]parts.Part
}

// Empty returns a tracker without pins.
func Empty() Tracker {
	return Tracker{}
}

// Lock pins part on slot, replacing any previous pin for that slot only.
func (t Tracker) Lock(slot parts.Slot, part parts.Part) Tracker {
	next := t.clone()
	next.pinned[slot] = part
	return next
}

// Unlock removes the pin on slot. Unlocking an unpinned slot returns an equal tracker.
func (t Tracker) Unlock(slot parts.Slot) Tracker {
	next := t.clone()
	delete(next.pinned, slot)
	if len(next.pinned) == 0 {
		return Tracker{}
	}
	return next
}

// Equal reports whether both trackers pin the same parts on the same slots.
func (t Tracker) Equal(other Tracker) bool {
	if len(t.pinned) != len(other.pinned) {
		return false
	}
	for slot, p := range t.pinned {
		q, ok := other.pinned[slot]
		if !ok || q != p {
			return false
		}
	}
	return true
}

// IsLocking reports whether slot is pinned.
func (t Tracker) IsLocking(slot parts.Slot) bool {
	_, ok := t.pinned[slot]
	return ok
}

// LockedKeys lists pinned slots in canonical order.
func (t Tracker) LockedKeys() []parts.Slot {
	var keys []parts.Slot
	for _, slot := range parts.Slots() {
		if t.IsLocking(slot) {
			keys = append(keys, slot)
		}
	}
	return keys
}

// Pinned returns the part pinned on slot.
func (t Tracker) Pinned(slot parts.Slot) (parts.Part, bool) {
	p, ok := t.pinned[slot]
	return p, ok
}

// Get returns the pinned part for slot, or fallback() when slot is free.
// fallback is not called for pinned slots.
func (t Tracker) Get(slot parts.Slot, fallback func() parts.Part) parts.Part {
	if p, ok := t.pinned[slot]; ok {
		return p
	}
	return fallback()
}

// Selection returns the pins as a partial slot mapping.
func (t Tracker) Selection() map[parts.Slot]parts.Part {
	out := make(map[parts.Slot]parts.Part, len(t.pinned))
	for slot, p := range t.pinned {
		out[slot] = p
	}
	return out
}

// ContradictionError reports pinned legs and a pinned booster that can never form a build.
type ContradictionError struct {
	Legs    parts.Part
	Booster parts.Part
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf(messages.LockContradictionFmt, e.Legs, e.Booster)
}

// Contradiction returns a *ContradictionError when both legs and booster are pinned
// and break the tank/booster coupling, nil otherwise.
func (t Tracker) Contradiction() error {
	legs, legsPinned := t.pinned[parts.Legs]
	booster, boosterPinned := t.pinned[parts.Booster]
	if !legsPinned || !boosterPinned {
		return nil
	}
	if legs.IsTank() == booster.IsNotEquipped() {
		return nil
	}
	return &ContradictionError{Legs: legs, Booster: booster}
}

func (t Tracker) clone() Tracker {
	next := Tracker{pinned: make(map[parts.Slot]parts.Part, len(t.pinned)+1)}
	for slot, p := range t.pinned {
		next.pinned[slot] = p
	}
	return next
}
