package parts

// Candidates holds one ordered pool of parts per slot.
// The zero value is an empty pool set. Every method returns a new value and never
// mutates the receiver or slices handed out by Get.
type Candidates struct {
	pools map[Slot][]Part
}

// NewCandidates copies pools into a new candidate set. Unknown slots are ignored.
func NewCandidates(pools map[Slot][]Part) Candidates {
	out := Candidates{pools: make(map[Slot][]Part, len(slotOrder))}
	for _, slot := range slotOrder {
		if list, ok := pools[slot]; ok {
			out.pools[slot] = append([]Part(nil), list...)
		}
	}
	return out
}

// Get returns a copy of the pool for slot.
func (c Candidates) Get(slot Slot) []Part {
	return append([]Part(nil), c.pools[slot]...)
}

// Len returns the pool size for slot.
func (c Candidates) Len(slot Slot) int {
	return len(c.pools[slot])
}

// With returns a copy of c whose pool for slot is replaced by list.
func (c Candidates) With(slot Slot, list []Part) Candidates {
	out := Candidates{pools: make(map[Slot][]Part, len(slotOrder))}
	for k, v := range c.pools {
		out.pools[k] = v
	}
	out.pools[slot] = append([]Part(nil), list...)
	return out
}

// Filter returns a copy of c keeping only the parts of slot for which keep returns true.
func (c Candidates) Filter(slot Slot, keep func(Part) bool) Candidates {
	current := c.pools[slot]
	kept := make([]Part, 0, len(current))
	for _, p := range current {
		if keep(p) {
			kept = append(kept, p)
		}
	}
	return c.With(slot, kept)
}

// FilterAll applies keep to every slot.
func (c Candidates) FilterAll(keep func(Slot, Part) bool) Candidates {
	out := c
	for _, slot := range slotOrder {
		s := slot
		out = out.Filter(s, func(p Part) bool { return keep(s, p) })
	}
	return out
}

// Find returns the first part in slot's pool with the given id.
func (c Candidates) Find(slot Slot, id string) (Part, bool) {
	for _, p := range c.pools[slot] {
		if p.ID == id {
			return p, true
		}
	}
	return Part{}, false
}

// EmptySlots lists slots whose pool is empty, in canonical order.
func (c Candidates) EmptySlots() []Slot {
	var empty []Slot
	for _, slot := range slotOrder {
		if len(c.pools[slot]) == 0 {
			empty = append(empty, slot)
		}
	}
	return empty
}
