// Package parts defines the frame parts a build is assembled from and the
// per-slot candidate pools the random assembler draws from.
package parts

import (
	"fmt"
	"strings"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
)

// Slot names one of the twelve positions of a build.
type Slot string

// Slots in canonical order.
const (
	RightArmUnit  Slot = "right_arm_unit"
	LeftArmUnit   Slot = "left_arm_unit"
	RightBackUnit Slot = "right_back_unit"
	LeftBackUnit  Slot = "left_back_unit"
	Head          Slot = "head"
	Core          Slot = "core"
	Arms          Slot = "arms"
	Legs          Slot = "legs"
	Booster       Slot = "booster"
	FCS           Slot = "fcs"
	Generator     Slot = "generator"
	Expansion     Slot = "expansion"
)

var slotOrder = []Slot{
	RightArmUnit,
	LeftArmUnit,
	RightBackUnit,
	LeftBackUnit,
	Head,
	Core,
	Arms,
	Legs,
	Booster,
	FCS,
	Generator,
	Expansion,
}

// Slots returns every slot in canonical order.
func Slots() []Slot {
	return append([]Slot(nil), slotOrder...)
}

// Index returns the position of s in canonical order, or -1 for unknown slots.
func (s Slot) Index() int {
	for i, candidate := range slotOrder {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the twelve known slots.
func (s Slot) Valid() bool {
	return s.Index() >= 0
}

// Family returns the catalog kind a slot draws its parts from.
// Both arm-unit slots share the arm-unit family, both back slots the back-unit family.
func (s Slot) Family() Kind {
	switch s {
	case RightArmUnit, LeftArmUnit:
		return KindArmUnit
	case RightBackUnit, LeftBackUnit:
		return KindBackUnit
	default:
		return Kind(s)
	}
}

// Accepts reports whether p may be mounted on s. Back slots also take arm units
// that fit the weapon bay.
func (s Slot) Accepts(p Part) bool {
	if p.Kind == s.Family() {
		return true
	}
	switch s {
	case RightBackUnit, LeftBackUnit:
		return p.Kind == KindArmUnit && p.WeaponBay && !p.IsNotEquipped()
	default:
		return false
	}
}

// ParseSlot accepts snake_case, kebab-case and upper-case slot names.
func ParseSlot(raw string) (Slot, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	slot := Slot(normalized)
	if !slot.Valid() {
		return "", fmt.Errorf(messages.PartsUnknownSlotFmt, raw, strings.Join(slotNames(), ", "))
	}
	return slot, nil
}

func slotNames() []string {
	names := make([]string, len(slotOrder))
	for i, slot := range slotOrder {
		names[i] = string(slot)
	}
	return names
}
