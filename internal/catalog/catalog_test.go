package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

const minimalDoc = `version: test
parts:
  arm_unit: [{id: gun, name: GUN, weapon_bay: true, weight: 100}]
  back_unit: [{id: cannon, name: CANNON}]
  head: [{id: head, name: HEAD}]
  core: [{id: core, name: CORE, generator_output_adjective: 100}]
  arms: [{id: arms, name: ARMS}]
  legs: [%LEGS%]
  booster: [{id: booster, name: BOOSTER}]
  fcs: [{id: fcs, name: FCS}]
  generator: [{id: gen, name: GEN, en_output: 1000}]
  expansion: [%EXPANSION%]
`

func doc(legs, expansion string) []byte {
	out := strings.Replace(minimalDoc, "%LEGS%", legs, 1)
	return []byte(strings.Replace(out, "%EXPANSION%", expansion, 1))
}

func mustLoad(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	return c
}

func TestVersions(t *testing.T) {
	versions := catalog.Versions()
	require.NotEmpty(t, versions)
	assert.Contains(t, versions, "v1.06.1")
	assert.Equal(t, versions[len(versions)-1], catalog.Latest())
}

func TestLoadEmbedded(t *testing.T) {
	c := mustLoad(t)
	assert.Equal(t, catalog.Latest(), c.Version)
	assert.Len(t, c.Digest, 64)

	for _, kind := range parts.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			list := c.Parts(kind)
			require.NotEmpty(t, list)
			_, hasSentinel := c.ByID(parts.NotEquippedID(kind))
			assert.Equal(t, kind.Optional(), hasSentinel)
		})
	}
}

func TestLoadUnknownVersion(t *testing.T) {
	_, err := catalog.Load("v0.00.0")
	assert.ErrorIs(t, err, catalog.ErrUnknownVersion)
}

func TestCandidates(t *testing.T) {
	c := mustLoad(t)
	pools := c.Candidates()
	for _, slot := range parts.Slots() {
		assert.NotZero(t, pools.Len(slot), "slot %s", slot)
	}

	_, ok := pools.Find(parts.RightBackUnit, "rf-024-turner")
	assert.True(t, ok, "weapon bay arm units fit back slots")
	_, ok = pools.Find(parts.LeftBackUnit, "vvc-760pr")
	assert.False(t, ok)
	_, ok = pools.Find(parts.LeftBackUnit, parts.NotEquippedID(parts.KindBackUnit))
	assert.True(t, ok)
	_, ok = pools.Find(parts.RightBackUnit, parts.NotEquippedID(parts.KindArmUnit))
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	c := mustLoad(t)
	tests := []struct {
		name  string
		slot  parts.Slot
		query string
		want  string
		err   error
	}{
		{name: "exact id", slot: parts.Head, query: "hd-011-melander", want: "hd-011-melander"},
		{name: "full name", slot: parts.Legs, query: "LG-011 MELANDER", want: "lg-011-melander"},
		{name: "case folded substring", slot: parts.RightArmUnit, query: "ludlow", want: "mg-014-ludlow"},
		{name: "full width", slot: parts.LeftArmUnit, query: "ＬＵＤＬＯＷ", want: "mg-014-ludlow"},
		{name: "weapon bay on back", slot: parts.RightBackUnit, query: "turner", want: "rf-024-turner"},
		{name: "sentinel by name", slot: parts.Booster, query: "(nothing)", want: parts.NotEquippedID(parts.KindBooster)},
		{name: "wrong slot", slot: parts.Head, query: "ludlow", err: catalog.ErrPartNotFound},
		{name: "blank", slot: parts.Head, query: "  ", err: catalog.ErrPartNotFound},
		{name: "ambiguous", slot: parts.RightArmUnit, query: "rf", err: catalog.ErrAmbiguousPart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := c.Find(tt.slot, tt.query)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.ID)
		})
	}
}

func TestFindAmbiguousListsMatches(t *testing.T) {
	_, err := mustLoad(t).Find(parts.RightArmUnit, "rf")
	var ambiguous *catalog.AmbiguousPartError
	require.True(t, errors.As(err, &ambiguous))
	assert.Len(t, ambiguous.Matches, 2)
	assert.Contains(t, err.Error(), "rf-024-turner")
}

func TestParse(t *testing.T) {
	legs := "{id: legs, name: LEGS, category: bipedal, load_limit: 5000}"
	c, err := catalog.Parse(doc(legs, "{id: armor, name: ARMOR}"), "inline")
	require.NoError(t, err)
	assert.Equal(t, "test", c.Version)
	assert.Equal(t, "inline", c.Source)
	assert.Equal(t, 14, c.Len(), "ten parts plus four sentinels")

	custom, err := catalog.Parse(doc(legs, "{id: armor, name: ARMOR}, {id: none, name: NONE, category: not-equipped}"), "inline")
	require.NoError(t, err)
	_, ok := custom.ByID(parts.NotEquippedID(parts.KindExpansion))
	assert.False(t, ok, "an explicit sentinel replaces the standard one")
	none, ok := custom.ByID("none")
	require.True(t, ok)
	assert.True(t, none.IsNotEquipped())
}

func TestParseRejects(t *testing.T) {
	legs := "{id: legs, name: LEGS, category: bipedal}"
	tests := []struct {
		name string
		data []byte
	}{
		{name: "not yaml", data: []byte("parts: [")},
		{name: "missing parts", data: []byte("version: x\n")},
		{name: "unknown field", data: doc(legs+", {id: l2, name: L2, category: tank, colour: red}", "{id: a, name: A}")},
		{name: "negative weight", data: doc("{id: legs, name: LEGS, category: bipedal, weight: -1}", "{id: a, name: A}")},
		{name: "duplicate id", data: doc(legs, "{id: gun, name: GUN AGAIN}")},
		{name: "blank id", data: doc(legs, "{id: ' ', name: BLANK}")},
		{name: "legs without class", data: doc("{id: legs, name: LEGS}", "{id: a, name: A}")},
		{name: "two sentinels", data: doc(legs, "{id: n1, name: N1, category: not-equipped}, {id: n2, name: N2, category: not-equipped}")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse(tt.data, "inline")
			require.Error(t, err)
		})
	}

	_, err := catalog.Parse(doc(legs, "{id: gun, name: GUN AGAIN}"), "inline")
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, doc("{id: legs, name: LEGS, category: tank}", "{id: a, name: A}"), 0o600))

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, c.Source)
	legs, ok := c.ByID("legs")
	require.True(t, ok)
	assert.True(t, legs.IsTank())

	_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	opened, err := catalog.Open("", path)
	require.NoError(t, err)
	assert.Equal(t, "test", opened.Version)
}
