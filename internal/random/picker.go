package random

import (
	"math/rand/v2"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

// Picker returns one element of a non-empty candidate list.
// The assembler never calls it with an empty list.
type Picker func(candidates []parts.Part) parts.Part

// UniformPicker draws uniformly with r. A *rand.Rand is not safe for concurrent use,
// so neither is the returned picker.
func UniformPicker(r *rand.Rand) Picker {
	return func(candidates []parts.Part) parts.Part {
		return candidates[r.IntN(len(candidates))]
	}
}

// SeededPicker draws uniformly from a PCG source seeded with seed, so equal seeds
// replay equal builds for equal pools.
func SeededPicker(seed uint64) Picker {
	return UniformPicker(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// defaultPicker draws from the process-wide source, which is safe for concurrent use.
func defaultPicker(candidates []parts.Part) parts.Part {
	return candidates[rand.IntN(len(candidates))]
}
