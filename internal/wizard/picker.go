package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/lock"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

var (
	errBack      = errors.New("wizard back requested")
	errCancelled = errors.New("wizard cancelled")
)

// IsAbort reports whether err means the user left the wizard with Esc or Ctrl+C.
func IsAbort(err error) bool {
	return errors.Is(err, errBack) || errors.Is(err, errCancelled)
}

type pickerStep int

const (
	stepSlots pickerStep = iota
	stepParts
	stepConfirm
)

// PickLocks asks which slots to pin and which part goes into each. current
// preselects slots and parts. Slots are walked in canonical order and every
// part list is narrowed by the pins chosen before it, so tank legs only offer
// the empty booster.
//
// The returned bool is false when the user declined the summary. Esc on the
// first screen and Ctrl+C anywhere return an error accepted by IsAbort.
func PickLocks(ui UI, cat *catalog.Catalog, current lock.Tracker) (lock.Tracker, bool, error) {
	slotNames := make([]string, 0, len(parts.Slots()))
	for _, slot := range parts.Slots() {
		slotNames = append(slotNames, string(slot))
	}
	var chosen []string
	for _, slot := range current.LockedKeys() {
		chosen = append(chosen, string(slot))
	}

	picked := map[parts.Slot]parts.Part{}
	for slot, p := range current.Selection() {
		picked[slot] = p
	}

	step := stepSlots
	index := 0
	for {
		switch step {
		case stepSlots:
			if err := ui.MultiSelect(messages.WizardSlotsTitle, slotNames, &chosen); err != nil {
				return current, false, err
			}
			if len(chosen) == 0 {
				step = stepConfirm
				continue
			}
			chosen = canonicalOrder(chosen)
			step, index = stepParts, 0

		case stepParts:
			slot := parts.Slot(chosen[index])
			p, err := pickPart(ui, cat, slot, chosen[:index], picked)
			if errors.Is(err, errBack) {
				if index == 0 {
					step = stepSlots
				} else {
					index--
				}
				continue
			}
			if err != nil {
				return current, false, err
			}
			picked[slot] = p
			if index++; index == len(chosen) {
				step = stepConfirm
			}

		case stepConfirm:
			tracker := lock.Empty()
			for _, name := range chosen {
				slot := parts.Slot(name)
				tracker = tracker.Lock(slot, picked[slot])
			}
			if err := ui.Note(messages.WizardSummaryTitle, Summary(tracker)); err != nil {
				if errors.Is(err, errBack) {
					step = backFromConfirm(chosen)
					index = max(len(chosen)-1, 0)
					continue
				}
				return current, false, err
			}
			ok := true
			if err := ui.Confirm(messages.WizardConfirmLocks, &ok); err != nil {
				if errors.Is(err, errBack) {
					step = backFromConfirm(chosen)
					index = max(len(chosen)-1, 0)
					continue
				}
				return current, false, err
			}
			if !ok {
				return current, false, nil
			}
			return tracker, true, nil
		}
	}
}

func backFromConfirm(chosen []string) pickerStep {
	if len(chosen) == 0 {
		return stepSlots
	}
	return stepParts
}

// pickPart offers the pool of slot narrowed by the pins of the earlier slots.
func pickPart(ui UI, cat *catalog.Catalog, slot parts.Slot, earlier []string, picked map[parts.Slot]parts.Part) (parts.Part, error) {
	pins := lock.Empty()
	for _, name := range earlier {
		s := parts.Slot(name)
		pins = pins.Lock(s, picked[s])
	}
	pool := pins.Filter(cat.Candidates()).Get(slot)
	if len(pool) == 0 {
		return parts.Part{}, fmt.Errorf(messages.WizardEmptyPoolFmt, slot)
	}

	options := make([]string, len(pool))
	byOption := make(map[string]parts.Part, len(pool))
	for i, p := range pool {
		options[i] = optionLabel(p)
		byOption[options[i]] = p
	}

	selected := options[0]
	if prev, ok := picked[slot]; ok {
		if _, inPool := byOption[optionLabel(prev)]; inPool {
			selected = optionLabel(prev)
		}
	}
	if err := ui.Select(fmt.Sprintf(messages.WizardPartTitleFmt, slot), options, &selected); err != nil {
		return parts.Part{}, err
	}
	p, ok := byOption[selected]
	if !ok {
		return parts.Part{}, fmt.Errorf(messages.WizardUnknownOptionFmt, selected)
	}
	return p, nil
}

func optionLabel(p parts.Part) string {
	name := p.Name
	if name == "" {
		name = p.ID
	}
	return fmt.Sprintf(messages.WizardPartOptionFmt, name, p.ID)
}

func canonicalOrder(names []string) []string {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	out := make([]string, 0, len(names))
	for _, slot := range parts.Slots() {
		if set[string(slot)] {
			out = append(out, string(slot))
		}
	}
	return out
}

// Summary lists the pins of t, one slot per line.
func Summary(t lock.Tracker) string {
	keys := t.LockedKeys()
	if len(keys) == 0 {
		return messages.WizardSummaryNone
	}
	lines := make([]string, 0, len(keys))
	for _, slot := range keys {
		p, _ := t.Pinned(slot)
		lines = append(lines, fmt.Sprintf(messages.WizardSummaryLineFmt, slot, optionLabel(p)))
	}
	return strings.Join(lines, "\n")
}

// LockMap renders t as the [locks] table: slot name to part id.
func LockMap(t lock.Tracker) map[string]string {
	out := make(map[string]string, len(t.LockedKeys()))
	for _, slot := range t.LockedKeys() {
		p, _ := t.Pinned(slot)
		out[string(slot)] = p.ID
	}
	return out
}
