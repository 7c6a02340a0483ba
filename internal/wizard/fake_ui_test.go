package wizard

import (
	"strings"
	"testing"
)

// fakeUI replays scripted answers in call order per method.
type fakeUI struct {
	t            *testing.T
	multiSelects []func(options []string, selected *[]string) error
	selects      []func(title string, options []string, current *string) error
	confirms     []func(title string, value *bool) error
	notes        []func(title string, body string) error
}

func (f *fakeUI) MultiSelect(_ string, options []string, selected *[]string) error {
	f.t.Helper()
	if len(f.multiSelects) == 0 {
		f.t.Fatal("unexpected MultiSelect")
	}
	next := f.multiSelects[0]
	f.multiSelects = f.multiSelects[1:]
	return next(options, selected)
}

func (f *fakeUI) Select(title string, options []string, current *string) error {
	f.t.Helper()
	if len(f.selects) == 0 {
		f.t.Fatalf("unexpected Select %q", title)
	}
	next := f.selects[0]
	f.selects = f.selects[1:]
	return next(title, options, current)
}

func (f *fakeUI) Confirm(title string, value *bool) error {
	f.t.Helper()
	if len(f.confirms) == 0 {
		f.t.Fatalf("unexpected Confirm %q", title)
	}
	next := f.confirms[0]
	f.confirms = f.confirms[1:]
	return next(title, value)
}

func (f *fakeUI) Note(title string, body string) error {
	f.t.Helper()
	if len(f.notes) == 0 {
		f.t.Fatalf("unexpected Note %q", title)
	}
	next := f.notes[0]
	f.notes = f.notes[1:]
	return next(title, body)
}

func (f *fakeUI) done() {
	f.t.Helper()
	if n := len(f.multiSelects) + len(f.selects) + len(f.confirms) + len(f.notes); n != 0 {
		f.t.Fatalf("%d scripted answers were never used", n)
	}
}

func chooseSlots(slots ...string) func([]string, *[]string) error {
	return func(_ []string, selected *[]string) error {
		*selected = slots
		return nil
	}
}

// choosePart selects the option ending in [id].
func choosePart(t *testing.T, id string) func(string, []string, *string) error {
	return func(title string, options []string, current *string) error {
		t.Helper()
		for _, o := range options {
			if strings.HasSuffix(o, "["+id+"]") {
				*current = o
				return nil
			}
		}
		t.Fatalf("%s: no option for %s in %v", title, id, options)
		return nil
	}
}

func answer(err error) func(string, []string, *string) error {
	return func(string, []string, *string) error { return err }
}

func confirmWith(v bool) func(string, *bool) error {
	return func(_ string, value *bool) error {
		*value = v
		return nil
	}
}

func acceptNote(string, string) error { return nil }
