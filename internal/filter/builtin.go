package filter

import (
	"slices"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/lock"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

// Names of the built-in filters.
const (
	NameExcludeNotEquipped = "exclude-not-equipped"
	NameExcludeParts       = "exclude-parts"
	NameCouplingClosure    = "coupling-closure"
	NameLegCategories      = "leg-categories"
)

// WeaponSlots are the four unit slots.
var WeaponSlots = []parts.Slot{parts.RightArmUnit, parts.LeftArmUnit, parts.RightBackUnit, parts.LeftBackUnit}

// ExcludeNotEquipped drops the not-equipped sentinel from slots, or from the four
// unit slots when none are given. The booster pool is left to the coupling rule.
func ExcludeNotEquipped(slots ...parts.Slot) Func {
	if len(slots) == 0 {
		slots = WeaponSlots
	}
	targets := append([]parts.Slot(nil), slots...)
	return New(NameExcludeNotEquipped, func(c parts.Candidates, _ Context) parts.Candidates {
		out := c
		for _, slot := range targets {
			out = out.Filter(slot, func(p parts.Part) bool { return !p.IsNotEquipped() })
		}
		return out
	})
}

// ExcludeParts drops parts by id from every pool.
func ExcludeParts(ids ...string) Func {
	excluded := append([]string(nil), ids...)
	return New(NameExcludeParts, func(c parts.Candidates, _ Context) parts.Candidates {
		return c.FilterAll(func(_ parts.Slot, p parts.Part) bool {
			return !slices.Contains(excluded, p.ID)
		})
	})
}

// IncludeCategories keeps only the given categories on slot.
func IncludeCategories(name string, slot parts.Slot, categories ...parts.Category) Func {
	kept := append([]parts.Category(nil), categories...)
	return New(name, func(c parts.Candidates, _ Context) parts.Candidates {
		return c.Filter(slot, func(p parts.Part) bool { return slices.Contains(kept, p.Category) })
	})
}

// CouplingClosure drops legs that no remaining booster can serve and boosters that no
// remaining legs can carry, so impossible combinations never reach the draw.
// Pinned legs or boosters in ctx.Selection stand in for their pools, since pins
// are used even when an earlier filter removed them.
func CouplingClosure() Func {
	return New(NameCouplingClosure, func(c parts.Candidates, ctx Context) parts.Candidates {
		legs := c.Get(parts.Legs)
		boosters := c.Get(parts.Booster)
		pinnedLegs, legsPinned := ctx.Selection[parts.Legs]
		if legsPinned {
			legs = []parts.Part{pinnedLegs}
		}
		pinnedBooster, boosterPinned := ctx.Selection[parts.Booster]
		if boosterPinned {
			boosters = []parts.Part{pinnedBooster}
		}

		out := c
		if !legsPinned {
			out = out.Filter(parts.Legs, func(l parts.Part) bool {
				return len(lock.CoupledBoosters(l, boosters)) > 0
			})
		}
		if !boosterPinned {
			out = out.Filter(parts.Booster, func(b parts.Part) bool {
				return len(lock.CoupledLegs(b, legs)) > 0
			})
		}
		return out
	})
}
