package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/config"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/doctor"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/warnings"
)

func TestDoctorPasses(t *testing.T) {
	cfg := writeConfig(t, "")
	out, _, err := runCLI(t, "doctor", "--config", cfg)
	if err != nil {
		t.Fatalf("doctor error: %v\n%s", err, out)
	}
	for _, want := range []string{"Config", "Catalog", "Store", "Profiles", "All checks passed."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestDoctorFailsOnContradictoryLocks(t *testing.T) {
	cfg := writeConfig(t, "[locks]\nlegs = \"ve-42a\"\nbooster = \"bst-g1-p10\"\n")
	out, _, err := runCLI(t, "doctor", "--config", cfg)

	var silent *SilentExitError
	if !errors.As(err, &silent) || silent.Code != 1 {
		t.Fatalf("expected SilentExitError{1}, got %v", err)
	}
	if !strings.Contains(out, "WARNING "+warnings.CodeLockContradiction) {
		t.Fatalf("expected contradiction warning:\n%s", out)
	}
	if !strings.Contains(out, "[FAIL]") {
		t.Fatalf("expected failed profile probe:\n%s", out)
	}
}

func TestDoctorNoiseQuietStillFailsOnResults(t *testing.T) {
	cfg := writeConfig(t, "[locks]\nlegs = \"ve-42a\"\nbooster = \"bst-g1-p10\"\n")
	out, _, err := runCLI(t, "doctor", "--config", cfg, "--noise", "quiet")
	if err == nil {
		t.Fatal("expected failure")
	}
	if strings.Contains(out, "WARNING ") {
		t.Fatalf("quiet mode must hide warnings:\n%s", out)
	}
}

func TestDoctorReduceHidesSuppressibleWarnings(t *testing.T) {
	cfg := writeConfig(t, "[filters]\nexclude_parts = [\"no-such-part\"]\n")

	out, _, err := runCLI(t, "doctor", "--config", cfg)
	if err == nil || !strings.Contains(out, warnings.CodeExcludeUnknownPart) {
		t.Fatalf("expected exclude warning, got %v:\n%s", err, out)
	}

	out, _, err = runCLI(t, "doctor", "--config", cfg, "--noise", "reduce")
	if err != nil {
		t.Fatalf("reduce should hide the only warning, got %v:\n%s", err, out)
	}
}

func TestDoctorSkipsWarningsWithoutCatalog(t *testing.T) {
	orig := checkConfigWarnings
	t.Cleanup(func() { checkConfigWarnings = orig })
	called := false
	checkConfigWarnings = func(*config.Config, *catalog.Catalog) []warnings.Warning {
		called = true
		return nil
	}

	cfg := writeConfig(t, "[catalog]\nversion = \"v0.0.0\"\n")
	out, _, err := runCLI(t, "doctor", "--config", cfg)
	if err == nil {
		t.Fatal("expected failure for unknown catalog version")
	}
	if called {
		t.Fatal("warnings need a catalog")
	}
	if !strings.Contains(out, "v0.0.0") {
		t.Fatalf("expected catalog failure in output:\n%s", out)
	}
}

func TestPrintResult(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var out bytes.Buffer
	printResult(&out, doctor.Result{
		Status:         doctor.StatusWarn,
		CheckName:      "Store",
		Message:        "stale",
		Recommendation: "first\n\nthird",
	})
	want := "[WARN] Store      stale\n" +
		"       -> first\n" +
		"          \n" +
		"          third\n"
	if out.String() != want {
		t.Fatalf("printResult() = %q, want %q", out.String(), want)
	}
}
