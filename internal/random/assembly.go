// Package random draws builds from candidate pools until one passes every validator.
package random

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/assembly"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/filter"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/lock"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/validation"
)

// DefaultLimit is the retry budget used by the CLI when none is configured.
const DefaultLimit = 3000

// ReservedPrefix marks validator keys owned by the assembler itself.
const ReservedPrefix = "__inner__"

// Keys of the internal validators.
const (
	KeyTankBoosterCoupling = ReservedPrefix + "tank-booster-coupling"
	KeySlotFit             = ReservedPrefix + "slot-fit"
)

type namedValidator struct {
	key       string
	validator validation.Validator
}

var internalValidators = []namedValidator{
	{key: KeyTankBoosterCoupling, validator: validation.Func(tankBoosterCoupling)},
	{key: KeySlotFit, validator: validation.Func(slotFit)},
}

// Attempt describes one draw, reported to an observer.
type Attempt struct {
	Number int
	Result validation.Result
}

// RandomAssembly is an immutable assembler configuration. Every With/Add/Remove
// method returns a new value.
type RandomAssembly struct {
	limit      int
	validators []namedValidator
	locks      lock.Tracker
	filters    filter.Set
	picker     Picker
	observer   func(Attempt)
}

// Init returns an assembler that tries at most limit draws per Assemble call.
func Init(limit int) (RandomAssembly, error) {
	if limit < 1 {
		return RandomAssembly{}, fmt.Errorf("%w: "+messages.RandomInvalidLimitFmt, ErrInvalidLimit, limit)
	}
	return RandomAssembly{limit: limit}, nil
}

// Limit returns the retry budget.
func (a RandomAssembly) Limit() int {
	return a.limit
}

// AddValidator registers v under key, replacing a previous validator with that key.
// Keys starting with ReservedPrefix are rejected with a *ReservedKeyError.
func (a RandomAssembly) AddValidator(key string, v validation.Validator) (RandomAssembly, error) {
	if isReserved(key) {
		return a, &ReservedKeyError{Key: key}
	}
	next := a.cloneValidators()
	for i, nv := range next.validators {
		if nv.key == key {
			next.validators[i].validator = v
			return next, nil
		}
	}
	next.validators = append(next.validators, namedValidator{key: key, validator: v})
	return next, nil
}

// RemoveValidator drops the validator registered under key. Unknown keys are a no-op;
// reserved keys are rejected with a *ReservedKeyError.
func (a RandomAssembly) RemoveValidator(key string) (RandomAssembly, error) {
	if isReserved(key) {
		return a, &ReservedKeyError{Key: key}
	}
	next := a
	next.validators = make([]namedValidator, 0, len(a.validators))
	for _, nv := range a.validators {
		if nv.key != key {
			next.validators = append(next.validators, nv)
		}
	}
	return next, nil
}

// GetValidator returns the caller validator registered under key.
func (a RandomAssembly) GetValidator(key string) (validation.Validator, bool) {
	for _, nv := range a.validators {
		if nv.key == key {
			return nv.validator, true
		}
	}
	return nil, false
}

// ValidatorKeys lists caller validator keys in registration order.
func (a RandomAssembly) ValidatorKeys() []string {
	keys := make([]string, len(a.validators))
	for i, nv := range a.validators {
		keys[i] = nv.key
	}
	return keys
}

// WithLocks sets the pinned parts.
func (a RandomAssembly) WithLocks(t lock.Tracker) RandomAssembly {
	a.locks = t
	return a
}

// Locks returns the pinned parts.
func (a RandomAssembly) Locks() lock.Tracker {
	return a.locks
}

// WithFilters sets the filter chain applied before drawing.
func (a RandomAssembly) WithFilters(s filter.Set) RandomAssembly {
	a.filters = s
	return a
}

// WithPicker replaces the uniform picker.
func (a RandomAssembly) WithPicker(p Picker) RandomAssembly {
	a.picker = p
	return a
}

// WithObserver registers fn to be called after every attempt.
func (a RandomAssembly) WithObserver(fn func(Attempt)) RandomAssembly {
	a.observer = fn
	return a
}

// Validate runs every caller validator, then the internal ones, and concatenates
// their results. All validators run even after a failure.
func (a RandomAssembly) Validate(b assembly.Build) validation.Result {
	results := make([]validation.Result, 0, len(a.validators)+len(internalValidators))
	for _, nv := range a.validators {
		results = append(results, nv.validator.Validate(b))
	}
	for _, nv := range internalValidators {
		results = append(results, nv.validator.Validate(b))
	}
	return validation.ConcatAll(validation.Success(b), results...)
}

// Narrow applies the locks and the filter chain to c once, as Assemble does before
// its first draw. It fails when the locks contradict each other or an unpinned slot
// is left without candidates.
func (a RandomAssembly) Narrow(c parts.Candidates) (parts.Candidates, error) {
	if err := a.locks.Contradiction(); err != nil {
		return parts.Candidates{}, fmt.Errorf("%w: %w", ErrContradictoryLocks, err)
	}
	narrowed := a.locks.Filter(c)
	chain := a.filters.Add(filter.CouplingClosure(), filter.Options{Enabled: true, Private: true})
	narrowed = chain.Apply(narrowed, filter.Context{Selection: a.locks.Selection()})
	for _, slot := range narrowed.EmptySlots() {
		if !a.locks.IsLocking(slot) {
			return parts.Candidates{}, &EmptyPoolError{Slot: slot}
		}
	}
	return narrowed, nil
}

// Assemble draws up to Limit builds from c and returns the first one that passes
// Validate. Pinned parts are always used as they are.
//
// Contradictory locks and empty pools fail before any draw. When every attempt
// fails, the *ExhaustedError carries all validation errors in attempt order.
func (a RandomAssembly) Assemble(c parts.Candidates) (assembly.Build, error) {
	narrowed, err := a.Narrow(c)
	if err != nil {
		return assembly.Build{}, err
	}
	pick := a.picker
	if pick == nil {
		pick = defaultPicker
	}

	var collected []error
	for attempt := 1; attempt <= a.limit; attempt++ {
		result := a.attempt(narrowed, pick)
		if a.observer != nil {
			a.observer(Attempt{Number: attempt, Result: result})
		}
		if b, ok := result.Build(); ok {
			return b, nil
		}
		collected = append(collected, result.Errors()...)
	}
	return assembly.Build{}, &ExhaustedError{Limit: a.limit, Errors: collected}
}

func (a RandomAssembly) attempt(pools parts.Candidates, pick Picker) validation.Result {
	selection := make(map[parts.Slot]parts.Part, len(parts.Slots()))
	for _, slot := range parts.Slots() {
		pool := pools.Get(slot)
		if slot == parts.Booster && !a.locks.IsLocking(parts.Booster) {
			legs := selection[parts.Legs]
			pool = lock.CoupledBoosters(legs, pool)
			if len(pool) == 0 {
				return validation.Failure(validation.Error{
					Validator: KeyTankBoosterCoupling,
					Message:   fmt.Sprintf(messages.RandomNoCoupledBoosterFmt, legs),
				})
			}
		}
		selection[slot] = a.locks.Get(slot, func() parts.Part { return pick(pool) })
	}

	b, err := assembly.New(selection)
	if err != nil {
		key := KeySlotFit
		var coupling *assembly.CouplingError
		if errors.As(err, &coupling) {
			key = KeyTankBoosterCoupling
		}
		return validation.Failure(validation.Error{Validator: key, Message: err.Error()})
	}
	return a.Validate(b)
}

func (a RandomAssembly) cloneValidators() RandomAssembly {
	next := a
	next.validators = append([]namedValidator(nil), a.validators...)
	return next
}

func isReserved(key string) bool {
	return strings.HasPrefix(key, ReservedPrefix)
}

func tankBoosterCoupling(b assembly.Build) validation.Result {
	if assembly.Coupled(b.Legs, b.Booster) {
		return validation.Success(b)
	}
	return validation.Failure(validation.Error{
		Validator: KeyTankBoosterCoupling,
		Message:   fmt.Sprintf(messages.ValidationTankBoosterCouplingFmt, b.Legs, b.Booster),
	})
}

func slotFit(b assembly.Build) validation.Result {
	var errs []error
	for _, sp := range b.Parts() {
		if sp.Part.ID == "" {
			errs = append(errs, validation.Error{
				Validator: KeySlotFit,
				Message:   fmt.Sprintf(messages.ValidationIncompletePartFmt, sp.Slot),
			})
			continue
		}
		if sp.Part.Kind != "" && !sp.Slot.Accepts(sp.Part) {
			errs = append(errs, validation.Error{
				Validator: KeySlotFit,
				Message:   fmt.Sprintf(messages.AssemblyWrongKindFmt, sp.Part, sp.Part.Kind, sp.Slot),
			})
		}
	}
	if len(errs) == 0 {
		return validation.Success(b)
	}
	return validation.Failure(errs[0], errs[1:]...)
}
