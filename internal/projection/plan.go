// Package projection turns config, profile and command-line settings into a
// ready-to-run random assembler.
package projection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/config"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/filter"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/lock"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/random"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/validation"
)

// Overrides are command-line settings. They win over the profile, which wins
// over the top-level config.
type Overrides struct {
	Profile            string
	Limit              *int
	Seed               *uint64
	Locks              map[string]string
	MaxCoam            *int
	MaxLoad            *int
	ExcludeNotEquipped []string
}

// Plan is an assembler with the candidate pools it should draw from.
type Plan struct {
	Assembler  random.RandomAssembly
	Candidates parts.Candidates
	Catalog    *catalog.Catalog
	// Profile is nil when no profile was selected.
	Profile *config.Profile
	// MaxCoam and MaxLoad are the effective caps, nil when unset.
	MaxCoam *int
	MaxLoad *int
}

// Build resolves cfg, the selected profile and o against cat.
func Build(cfg *config.Config, cat *catalog.Catalog, o Overrides) (Plan, error) {
	plan := Plan{Catalog: cat, Candidates: cat.Candidates()}

	locks := mergeLocks(cfg.Locks)
	maxCoam, maxLoad := cfg.Validators.MaxCoam, cfg.Validators.MaxLoad
	if o.Profile != "" {
		profile, err := cfg.Profile(o.Profile)
		if err != nil {
			return Plan{}, err
		}
		plan.Profile = &profile
		locks = mergeLocks(locks, profile.Locks)
		maxCoam = firstSet(profile.MaxCoam, maxCoam)
		maxLoad = firstSet(profile.MaxLoad, maxLoad)
	}
	locks = mergeLocks(locks, o.Locks)
	maxCoam = firstSet(o.MaxCoam, maxCoam)
	maxLoad = firstSet(o.MaxLoad, maxLoad)

	limit := random.DefaultLimit
	if l := firstSet(o.Limit, cfg.Assembly.Limit); l != nil {
		limit = *l
	}
	assembler, err := random.Init(limit)
	if err != nil {
		return Plan{}, err
	}

	for _, nv := range Validators(cfg.Validators, maxCoam, maxLoad) {
		if assembler, err = assembler.AddValidator(nv.Key, nv.Validator); err != nil {
			return Plan{}, err
		}
	}

	tracker, err := ResolveLocks(cat, locks)
	if err != nil {
		return Plan{}, err
	}
	assembler = assembler.WithLocks(tracker)

	filters, err := Filters(cfg.Filters, o.ExcludeNotEquipped)
	if err != nil {
		return Plan{}, err
	}
	assembler = assembler.WithFilters(filters)

	seed := o.Seed
	if seed == nil {
		seed = cfg.Assembly.Seed
	}
	if seed != nil {
		assembler = assembler.WithPicker(random.SeededPicker(*seed))
	}

	plan.Assembler = assembler
	plan.MaxCoam, plan.MaxLoad = maxCoam, maxLoad
	return plan, nil
}

// NamedValidator pairs a validator with its registry key.
type NamedValidator struct {
	Key       string
	Validator validation.Validator
}

// Validators returns the enabled built-in validators in a fixed order.
func Validators(v config.ValidatorsConfig, maxCoam *int, maxLoad *int) []NamedValidator {
	var out []NamedValidator
	if config.Enabled(v.Energy) {
		out = append(out, NamedValidator{validation.KeyNotOverEnergyOutput, validation.NotOverEnergyOutput()})
	}
	if config.Enabled(v.SameSideWeapons) {
		out = append(out, NamedValidator{validation.KeyNoSameWeaponPerSide, validation.NoSameWeaponPerSide()})
	}
	if config.Enabled(v.LoadLimit) {
		out = append(out, NamedValidator{validation.KeyNotOverLoadLimit, validation.NotOverLoadLimit()})
	}
	if config.Enabled(v.ArmsLoadLimit) {
		out = append(out, NamedValidator{validation.KeyNotOverArmsLoad, validation.NotOverArmsLoadLimit()})
	}
	if maxCoam != nil {
		out = append(out, NamedValidator{validation.KeyTotalCoamNotOverMax, validation.TotalCoamNotOverMax(*maxCoam)})
	}
	if maxLoad != nil {
		out = append(out, NamedValidator{validation.KeyTotalLoadNotOverMax, validation.TotalLoadNotOverMax(*maxLoad)})
	}
	return out
}

// Filters builds the enabled filter chain. extraSlots are added to the
// configured exclude_not_equipped slots.
func Filters(f config.FiltersConfig, extraSlots []string) (filter.Set, error) {
	set := filter.NewSet()

	var slots []parts.Slot
	for _, raw := range append(append([]string(nil), f.ExcludeNotEquipped...), extraSlots...) {
		slot, err := parts.ParseSlot(raw)
		if err != nil {
			return filter.Set{}, fmt.Errorf(messages.ProjectionExcludeSlotFmt, raw, err)
		}
		slots = append(slots, slot)
	}
	if len(slots) > 0 {
		set = set.Add(filter.ExcludeNotEquipped(slots...), filter.Options{Enabled: true})
	}
	if len(f.ExcludeParts) > 0 {
		set = set.Add(filter.ExcludeParts(f.ExcludeParts...), filter.Options{Enabled: true})
	}
	if len(f.LegCategories) > 0 {
		categories := make([]parts.Category, len(f.LegCategories))
		for i, raw := range f.LegCategories {
			categories[i] = parts.Category(raw)
		}
		set = set.Add(filter.IncludeCategories(filter.NameLegCategories, parts.Legs, categories...), filter.Options{Enabled: true})
	}
	return set, nil
}

// ResolveLocks looks every slot=query pair up in cat. Slots are resolved in
// canonical order so the first reported error is stable.
func ResolveLocks(cat *catalog.Catalog, locks map[string]string) (lock.Tracker, error) {
	bySlot := make(map[parts.Slot]string, len(locks))
	for key, query := range locks {
		slot, err := parts.ParseSlot(key)
		if err != nil {
			return lock.Tracker{}, fmt.Errorf(messages.ProjectionLockSlotFmt, key, err)
		}
		bySlot[slot] = query
	}

	tracker := lock.Empty()
	for _, slot := range parts.Slots() {
		query, ok := bySlot[slot]
		if !ok {
			continue
		}
		p, err := cat.Find(slot, query)
		if err != nil {
			return lock.Tracker{}, fmt.Errorf(messages.ProjectionLockFmt, slot, err)
		}
		tracker = tracker.Lock(slot, p)
	}
	return tracker, nil
}

// ParseLockArgs turns repeated slot=part flags into a lock map. Later flags for
// the same slot win.
func ParseLockArgs(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" || strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf(messages.ProjectionLockSyntaxFmt, arg)
		}
		slot, err := parts.ParseSlot(key)
		if err != nil {
			return nil, fmt.Errorf(messages.ProjectionLockSlotFmt, arg, err)
		}
		out[string(slot)] = strings.TrimSpace(value)
	}
	return out, nil
}

// LockArgs renders locks back into sorted slot=part flags.
func LockArgs(locks map[string]string) []string {
	out := make([]string, 0, len(locks))
	for key, value := range locks {
		out = append(out, key+"="+value)
	}
	sort.Strings(out)
	return out
}

func mergeLocks(layers ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, layer := range layers {
		for key, value := range layer {
			slot, err := parts.ParseSlot(key)
			if err != nil {
				// Keep the raw key so ResolveLocks reports it.
				out[key] = value
				continue
			}
			out[string(slot)] = value
		}
	}
	return out
}

func firstSet[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
