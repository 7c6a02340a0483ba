// Package assembly holds the Build value: one part per slot plus the statistics derived from it.
package assembly

import (
	"fmt"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

// Build is a complete selection of one part per slot.
// Builds created through New always satisfy the tank/booster coupling:
// tank legs carry the not-equipped booster and every other leg class carries a real one.
type Build struct {
	RightArmUnit  parts.Part
	LeftArmUnit   parts.Part
	RightBackUnit parts.Part
	LeftBackUnit  parts.Part
	Head          parts.Part
	Core          parts.Part
	Arms          parts.Part
	Legs          parts.Part
	Booster       parts.Part
	FCS           parts.Part
	Generator     parts.Part
	Expansion     parts.Part
}

// MissingSlotError reports a selection without a part for Slot.
type MissingSlotError struct {
	Slot parts.Slot
}

func (e *MissingSlotError) Error() string {
	return fmt.Sprintf(messages.AssemblyMissingSlotFmt, e.Slot)
}

// WrongKindError reports a part offered for a slot of another family.
type WrongKindError struct {
	Slot parts.Slot
	Part parts.Part
}

func (e *WrongKindError) Error() string {
	return fmt.Sprintf(messages.AssemblyWrongKindFmt, e.Part, e.Part.Kind, e.Slot)
}

// CouplingError reports legs and a booster that break the tank/booster rule.
type CouplingError struct {
	Legs    parts.Part
	Booster parts.Part
}

func (e *CouplingError) Error() string {
	return fmt.Sprintf(messages.AssemblyCouplingFmt, e.Legs, e.Legs.Category, e.Booster)
}

// New builds a Build from a complete slot mapping. It fails without a partial result
// when a slot is missing, a part sits on a slot of another family, or the legs and
// booster break the tank/booster coupling.
func New(selection map[parts.Slot]parts.Part) (Build, error) {
	var b Build
	for _, slot := range parts.Slots() {
		p, ok := selection[slot]
		if !ok {
			return Build{}, &MissingSlotError{Slot: slot}
		}
		if p.Kind != "" && !slot.Accepts(p) {
			return Build{}, &WrongKindError{Slot: slot, Part: p}
		}
		*b.slotRef(slot) = p
	}
	if !Coupled(b.Legs, b.Booster) {
		return Build{}, &CouplingError{Legs: b.Legs, Booster: b.Booster}
	}
	return b, nil
}

// Coupled reports whether legs and booster satisfy the tank/booster rule.
func Coupled(legs parts.Part, booster parts.Part) bool {
	return legs.IsTank() == booster.IsNotEquipped()
}

// Get returns the part mounted on slot. Unknown slots yield the zero Part.
func (b Build) Get(slot parts.Slot) parts.Part {
	ref := b.slotRef(slot)
	if ref == nil {
		return parts.Part{}
	}
	return *ref
}

// With returns a copy of b with slot replaced by p, re-checking the coupling.
func (b Build) With(slot parts.Slot, p parts.Part) (Build, error) {
	selection := b.Selection()
	selection[slot] = p
	return New(selection)
}

// Selection returns the build as a slot mapping.
func (b Build) Selection() map[parts.Slot]parts.Part {
	out := make(map[parts.Slot]parts.Part, 12)
	for _, slot := range parts.Slots() {
		out[slot] = b.Get(slot)
	}
	return out
}

// SlotPart pairs a slot with its mounted part.
type SlotPart struct {
	Slot parts.Slot
	Part parts.Part
}

// Parts lists the mounted parts in canonical slot order.
func (b Build) Parts() []SlotPart {
	slots := parts.Slots()
	out := make([]SlotPart, len(slots))
	for i, slot := range slots {
		out[i] = SlotPart{Slot: slot, Part: b.Get(slot)}
	}
	return out
}

func (b *Build) slotRef(slot parts.Slot) *parts.Part {
	switch slot {
	case parts.RightArmUnit:
		return &b.RightArmUnit
	case parts.LeftArmUnit:
		return &b.LeftArmUnit
	case parts.RightBackUnit:
		return &b.RightBackUnit
	case parts.LeftBackUnit:
		return &b.LeftBackUnit
	case parts.Head:
		return &b.Head
	case parts.Core:
		return &b.Core
	case parts.Arms:
		return &b.Arms
	case parts.Legs:
		return &b.Legs
	case parts.Booster:
		return &b.Booster
	case parts.FCS:
		return &b.FCS
	case parts.Generator:
		return &b.Generator
	case parts.Expansion:
		return &b.Expansion
	default:
		return nil
	}
}
