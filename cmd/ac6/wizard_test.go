package main

import (
	"errors"
	"io"
	"testing"
)

func TestWizardCommandRequiresTerminal(t *testing.T) {
	originalIsTerminal := isTerminal
	t.Cleanup(func() { isTerminal = originalIsTerminal })
	isTerminal = func() bool { return false }

	_, _, err := runCLI(t, "wizard")
	if err == nil || err.Error() != "wizard requires an interactive terminal" {
		t.Fatalf("expected terminal error, got %v", err)
	}
}

func TestWizardCommandRunsWizard(t *testing.T) {
	originalIsTerminal := isTerminal
	originalRunWizard := runWizard
	t.Cleanup(func() {
		isTerminal = originalIsTerminal
		runWizard = originalRunWizard
	})
	isTerminal = func() bool { return true }

	var gotPath string
	runWizard = func(path string, _ io.Writer) error {
		gotPath = path
		return nil
	}

	if _, _, err := runCLI(t, "wizard"); err != nil {
		t.Fatalf("wizard error: %v", err)
	}
	if gotPath != "ac6.toml" {
		t.Fatalf("expected default config path, got %q", gotPath)
	}

	if _, _, err := runCLI(t, "wizard", "--config", "/tmp/other.toml"); err != nil {
		t.Fatalf("wizard error: %v", err)
	}
	if gotPath != "/tmp/other.toml" {
		t.Fatalf("expected --config path, got %q", gotPath)
	}
}

func TestWizardCommandPropagatesError(t *testing.T) {
	originalIsTerminal := isTerminal
	originalRunWizard := runWizard
	t.Cleanup(func() {
		isTerminal = originalIsTerminal
		runWizard = originalRunWizard
	})
	isTerminal = func() bool { return true }
	wantErr := errors.New("wizard failed")
	runWizard = func(string, io.Writer) error { return wantErr }

	_, _, err := runCLI(t, "wizard")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
