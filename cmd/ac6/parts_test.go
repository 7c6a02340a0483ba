package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

func TestPartsListsSlots(t *testing.T) {
	cfg := writeConfig(t, "")
	out, _, err := runCLI(t, "parts", "--config", cfg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(parts.Slots())+1)
	assert.Equal(t, "Catalog "+catalog.Latest(), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "right_arm_unit"))
}

func TestPartsListsSlotPool(t *testing.T) {
	cfg := writeConfig(t, "")
	out, _, err := runCLI(t, "parts", "--config", cfg, "legs")
	require.NoError(t, err)
	assert.Contains(t, out, "ve-42a")
	assert.Contains(t, out, "VE-42A")

	_, _, err = runCLI(t, "parts", "--config", cfg, "wings")
	require.Error(t, err)
}
