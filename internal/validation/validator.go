package validation

import (
	"fmt"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/assembly"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

// Validator checks a build. Implementations must be pure.
type Validator interface {
	Validate(b assembly.Build) Result
}

// Func adapts a function into a Validator.
type Func func(b assembly.Build) Result

// Validate calls f.
func (f Func) Validate(b assembly.Build) Result {
	return f(b)
}

// Keys of the built-in validators, used as registry keys and error labels.
const (
	KeyNotOverEnergyOutput = "not-over-energy-output"
	KeyNoSameWeaponPerSide = "no-same-weapon-per-side"
	KeyTotalCoamNotOverMax = "total-coam-not-over-max"
	KeyTotalLoadNotOverMax = "total-load-not-over-max"
	KeyNotOverLoadLimit    = "not-over-load-limit"
	KeyNotOverArmsLoad     = "not-over-arms-load-limit"
)

func fail(key string, format string, args ...any) Result {
	return Failure(Error{Validator: key, Message: fmt.Sprintf(format, args...)})
}

// NotOverEnergyOutput rejects builds whose EN load exceeds the EN output.
func NotOverEnergyOutput() Validator {
	return Func(func(b assembly.Build) Result {
		if b.WithinENOutput() {
			return Success(b)
		}
		return fail(KeyNotOverEnergyOutput, messages.ValidationNotOverEnergyFmt, b.ENLoad(), b.ENOutput())
	})
}

// NoSameWeaponPerSide rejects the same unit on the arm and back slot of one side.
// Each side is checked on its own; empty slots never count as duplicates.
func NoSameWeaponPerSide() Validator {
	return Func(func(b assembly.Build) Result {
		var errs []error
		sides := []struct {
			name string
			arm  parts.Part
			back parts.Part
		}{
			{name: "left", arm: b.LeftArmUnit, back: b.LeftBackUnit},
			{name: "right", arm: b.RightArmUnit, back: b.RightBackUnit},
		}
		for _, side := range sides {
			if side.arm.IsNotEquipped() || side.arm.ID == "" || side.arm.ID != side.back.ID {
				continue
			}
			errs = append(errs, Error{
				Validator: KeyNoSameWeaponPerSide,
				Message:   fmt.Sprintf(messages.ValidationSameWeaponFmt, side.name, side.arm),
			})
		}
		if len(errs) == 0 {
			return Success(b)
		}
		return Failure(errs[0], errs[1:]...)
	})
}

// TotalCoamNotOverMax rejects builds costing more than maxCoam.
func TotalCoamNotOverMax(maxCoam int) Validator {
	return Func(func(b assembly.Build) Result {
		if b.Coam() <= maxCoam {
			return Success(b)
		}
		return fail(KeyTotalCoamNotOverMax, messages.ValidationTotalCoamFmt, b.Coam(), maxCoam)
	})
}

// TotalLoadNotOverMax rejects builds whose load exceeds maxLoad.
func TotalLoadNotOverMax(maxLoad int) Validator {
	return Func(func(b assembly.Build) Result {
		if b.Load() <= maxLoad {
			return Success(b)
		}
		return fail(KeyTotalLoadNotOverMax, messages.ValidationTotalLoadFmt, b.Load(), maxLoad)
	})
}

// NotOverLoadLimit rejects builds heavier than their legs can carry.
func NotOverLoadLimit() Validator {
	return Func(func(b assembly.Build) Result {
		if b.WithinLoadLimit() {
			return Success(b)
		}
		return fail(KeyNotOverLoadLimit, messages.ValidationLoadLimitFmt, b.Load(), b.LoadLimit())
	})
}

// NotOverArmsLoadLimit rejects arm units heavier than the arms can hold.
func NotOverArmsLoadLimit() Validator {
	return Func(func(b assembly.Build) Result {
		if b.WithinArmsLoadLimit() {
			return Success(b)
		}
		return fail(KeyNotOverArmsLoad, messages.ValidationArmsLoadLimitFmt, b.ArmsLoad(), b.ArmsLoadLimit())
	})
}
