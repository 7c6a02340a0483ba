package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/random"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/wizard"
)

func TestRandomSeedReplaysBuild(t *testing.T) {
	cfg := writeConfig(t, "")

	first, _, err := runCLI(t, "random", "--config", cfg, "--seed", "11", "--format", "query")
	require.NoError(t, err)
	second, _, err := runCLI(t, "random", "--config", cfg, "--seed", "11", "--format", "query")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "v="+catalog.Latest())
	assert.Equal(t, 1, strings.Count(first, "\n"))
}

func TestRandomTextOutput(t *testing.T) {
	cfg := writeConfig(t, "")
	out, _, err := runCLI(t, "random", "--config", cfg, "--seed", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "right_arm_unit")
	assert.Contains(t, out, "COAM")
	assert.Contains(t, out, "\nShare query: ")
	assert.NotContains(t, out, "\x1b[")
}

func TestRandomLockFlag(t *testing.T) {
	cfg := writeConfig(t, "")
	out, _, err := runCLI(t, "random", "--config", cfg, "--seed", "4", "--format", "query", "--lock", "legs=ve-42a")
	require.NoError(t, err)

	assert.Contains(t, out, "l=ve-42a")
	assert.Contains(t, out, "b="+parts.NotEquippedID(parts.KindBooster))
}

func TestRandomProfile(t *testing.T) {
	cfg := writeConfig(t, "[[profiles]]\nname = \"tank\"\n\n[profiles.locks]\nlegs = \"ve-42a\"\n")

	out, _, err := runCLI(t, "random", "--config", cfg, "--seed", "4", "--format", "query", "--profile", "tank")
	require.NoError(t, err)
	assert.Contains(t, out, "l=ve-42a")

	_, _, err = runCLI(t, "random", "--config", cfg, "--profile", "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestRandomConfigLocksApply(t *testing.T) {
	cfg := writeConfig(t, "[locks]\nhead = \"hd-011-melander\"\n")
	out, _, err := runCLI(t, "random", "--config", cfg, "--seed", "9", "--format", "query")
	require.NoError(t, err)
	assert.Contains(t, out, "h=hd-011-melander")

	out, _, err = runCLI(t, "random", "--config", cfg, "--seed", "9", "--format", "query", "--lock", "head=ah-j-124-basho")
	require.NoError(t, err)
	assert.Contains(t, out, "h=ah-j-124-basho", "flag locks win over config locks")
}

func TestRandomExhausted(t *testing.T) {
	cfg := writeConfig(t, "")
	_, _, err := runCLI(t, "random", "--config", cfg, "--seed", "1", "--limit", "5", "--max-coam", "1")
	require.ErrorIs(t, err, random.ErrExhausted)
}

func TestRandomContradictoryLocks(t *testing.T) {
	cfg := writeConfig(t, "")
	_, _, err := runCLI(t, "random", "--config", cfg, "--lock", "legs=ve-42a", "--lock", "booster=bst-g1-p10")
	require.ErrorIs(t, err, random.ErrContradictoryLocks)
}

func TestRandomRejectsBadFlags(t *testing.T) {
	cfg := writeConfig(t, "")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "format", args: []string{"--format", "yaml"}, want: "yaml"},
		{name: "note without save", args: []string{"--note", "x"}, want: "--save"},
		{name: "lock syntax", args: []string{"--lock", "legs"}, want: "slot=part"},
		{name: "unknown part", args: []string{"--lock", "head=nope"}, want: "nope"},
		{name: "exclude slot", args: []string{"--exclude-not-equipped", "tail"}, want: "tail"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"random", "--config", cfg}, tt.args...)
			_, _, err := runCLI(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRandomVerbose(t *testing.T) {
	cfg := writeConfig(t, "")
	_, errOut, err := runCLI(t, "random", "--config", cfg, "--seed", "3", "--verbose", "--max-coam", "1", "--limit", "2")
	require.Error(t, err)

	assert.Contains(t, errOut, "Candidates after locks and filters:")
	assert.Contains(t, errOut, "attempt 1: rejected")
	assert.Contains(t, errOut, "attempt 2: rejected")
	assert.NotContains(t, errOut, "attempt 3")
}

func TestRandomSave(t *testing.T) {
	cfg := writeConfig(t, "")
	out, errOut, err := runCLI(t, "random", "--config", cfg, "--seed", "5", "--save", "mine", "--note", "first try")
	require.NoError(t, err)
	assert.Contains(t, errOut, `Saved as "mine".`)

	stats, _, err := runCLI(t, "stats", "--config", cfg, "mine")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, stats), "stats of a saved build repeats its sheet")
}

type scriptedUI struct {
	slots   []string
	partID  string
	confirm bool
}

func (u *scriptedUI) MultiSelect(_ string, _ []string, selected *[]string) error {
	*selected = u.slots
	return nil
}

func (u *scriptedUI) Select(_ string, options []string, current *string) error {
	for _, option := range options {
		if strings.HasSuffix(option, "["+u.partID+"]") {
			*current = option
			return nil
		}
	}
	return fmt.Errorf("option %s not offered", u.partID)
}

func (u *scriptedUI) Confirm(_ string, value *bool) error {
	*value = u.confirm
	return nil
}

func (u *scriptedUI) Note(string, string) error { return nil }

func stubPickerUI(t *testing.T, ui wizard.UI) {
	t.Helper()
	orig := newPickerUI
	t.Cleanup(func() { newPickerUI = orig })
	newPickerUI = func() wizard.UI { return ui }
}

func TestRandomInteractive(t *testing.T) {
	cfg := writeConfig(t, "")
	stubPickerUI(t, &scriptedUI{slots: []string{"legs"}, partID: "ve-42a", confirm: true})

	out, _, err := runCLI(t, "random", "--config", cfg, "--seed", "8", "--format", "query", "--interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "l=ve-42a")
}

func TestRandomInteractiveDeclined(t *testing.T) {
	cfg := writeConfig(t, "")
	stubPickerUI(t, &scriptedUI{confirm: false})

	out, errOut, err := runCLI(t, "random", "--config", cfg, "--interactive")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Exited without changes.")
}
