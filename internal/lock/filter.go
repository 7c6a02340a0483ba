package lock

import "github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"

// Filter narrows candidate pools to what the pins allow.
//
// Every pinned slot's pool becomes the pinned part alone. The tank/booster coupling
// is then propagated across the two slots:
//   - a pinned booster decides the legs pool: the not-equipped booster keeps tank legs
//     only, a real booster keeps every other leg class;
//   - otherwise pinned legs decide the booster pool: tank legs keep only the
//     not-equipped booster, other legs drop it.
//
// When both are pinned the booster pin wins for the legs pool.
func (t Tracker) Filter(c parts.Candidates) parts.Candidates {
	out := c
	for _, slot := range t.LockedKeys() {
		out = out.With(slot, []parts.Part{t.pinned[slot]})
	}

	if booster, ok := t.pinned[parts.Booster]; ok {
		out = out.With(parts.Legs, CoupledLegs(booster, out.Get(parts.Legs)))
		return out
	}
	if legs, ok := t.pinned[parts.Legs]; ok {
		out = out.With(parts.Booster, CoupledBoosters(legs, out.Get(parts.Booster)))
	}
	return out
}

// CoupledBoosters keeps the boosters that may be mounted together with legs.
func CoupledBoosters(legs parts.Part, boosters []parts.Part) []parts.Part {
	kept := make([]parts.Part, 0, len(boosters))
	for _, b := range boosters {
		if legs.IsTank() == b.IsNotEquipped() {
			kept = append(kept, b)
		}
	}
	return kept
}

// CoupledLegs keeps the legs that may carry booster.
func CoupledLegs(booster parts.Part, legs []parts.Part) []parts.Part {
	kept := make([]parts.Part, 0, len(legs))
	for _, l := range legs {
		if l.IsTank() == booster.IsNotEquipped() {
			kept = append(kept, l)
		}
	}
	return kept
}
