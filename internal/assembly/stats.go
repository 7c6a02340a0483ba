package assembly

import (
	"slices"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

// Statistics are computed on every read; a Build stores parts only.

// AP is the armor total of head, core, arms and legs.
func (b Build) AP() int {
	return b.Head.AP + b.Core.AP + b.Arms.AP + b.Legs.AP
}

// Weight sums every slot except the expansion.
func (b Build) Weight() int {
	return sumExcept(b, func(p parts.Part) int { return p.Weight }, parts.Expansion)
}

// Load is the weight carried by the legs.
func (b Build) Load() int {
	return b.Weight() - b.Legs.Weight
}

// LoadLimit is the legs' load capacity.
func (b Build) LoadLimit() int {
	return b.Legs.LoadLimit
}

// WithinLoadLimit reports Load <= LoadLimit.
func (b Build) WithinLoadLimit() bool {
	return b.Load() <= b.LoadLimit()
}

// ArmsLoad is the weight held by the two arm units.
func (b Build) ArmsLoad() int {
	return b.RightArmUnit.Weight + b.LeftArmUnit.Weight
}

// ArmsLoadLimit is the arms' capacity for arm units.
func (b Build) ArmsLoadLimit() int {
	return b.Arms.ArmsLoadLimit
}

// WithinArmsLoadLimit reports ArmsLoad <= ArmsLoadLimit.
func (b Build) WithinArmsLoadLimit() bool {
	return b.ArmsLoad() <= b.ArmsLoadLimit()
}

// ENLoad sums every slot except the generator and the expansion.
func (b Build) ENLoad() int {
	return sumExcept(b, func(p parts.Part) int { return p.ENLoad }, parts.Generator, parts.Expansion)
}

// ENOutput is the generator output scaled by the core's adjective percentage, floored.
func (b Build) ENOutput() int {
	product := b.Generator.ENOutput * b.Core.GeneratorOutputAdjective
	if product < 0 && product%100 != 0 {
		return product/100 - 1
	}
	return product / 100
}

// WithinENOutput reports ENLoad <= ENOutput.
func (b Build) WithinENOutput() bool {
	return b.ENLoad() <= b.ENOutput()
}

// ENSurplus is ENOutput minus ENLoad; negative when the generator falls short.
func (b Build) ENSurplus() int {
	return b.ENOutput() - b.ENLoad()
}

// Coam is the total price of every slot except the expansion.
func (b Build) Coam() int {
	return sumExcept(b, func(p parts.Part) int { return p.Price }, parts.Expansion)
}

func sumExcept(b Build, value func(parts.Part) int, excluded ...parts.Slot) int {
	total := 0
	for _, slot := range parts.Slots() {
		if slices.Contains(excluded, slot) {
			continue
		}
		total += value(b.Get(slot))
	}
	return total
}
