package share_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/assembly"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/share"
)

var sampleIDs = map[parts.Slot]string{
	parts.RightArmUnit:  "rf-024-turner",
	parts.LeftArmUnit:   "hi-32-bu-tt-a",
	parts.RightBackUnit: "bml-g1-p20mlt-04",
	parts.LeftBackUnit:  "not-equipped-back_unit",
	parts.Head:          "hd-011-melander",
	parts.Core:          "bd-011-melander",
	parts.Arms:          "ar-011-melander",
	parts.Legs:          "lg-011-melander",
	parts.Booster:       "bst-g1-p10",
	parts.FCS:           "fc-006-abbot",
	parts.Generator:     "ag-j-098-joso",
	parts.Expansion:     "assault-armor",
}

func sample(t *testing.T) (*catalog.Catalog, assembly.Build) {
	t.Helper()
	c, err := catalog.Load("v1.06.1")
	require.NoError(t, err)
	selection := make(map[parts.Slot]parts.Part, len(sampleIDs))
	for slot, id := range sampleIDs {
		p, ok := c.ByID(id)
		require.True(t, ok, id)
		selection[slot] = p
	}
	b, err := assembly.New(selection)
	require.NoError(t, err)
	return c, b
}

func TestEncodeDecode(t *testing.T) {
	c, b := sample(t)
	query := share.Encode(b, c.Version)

	values, err := url.ParseQuery(query)
	require.NoError(t, err)
	assert.Equal(t, "hd-011-melander", values.Get("h"))
	assert.Equal(t, "v1.06.1", values.Get(share.VersionKey))

	decoded, err := share.Decode(query, c)
	require.NoError(t, err)
	assert.Equal(t, b, decoded)
	assert.Equal(t, query, share.Encode(decoded, c.Version), "encoding is stable")
}

func TestDecodeAcceptsURLs(t *testing.T) {
	c, b := sample(t)
	query := share.Encode(b, "")

	for _, input := range []string{"?" + query, "https://example.com/build?" + query, "  " + query + "\n"} {
		decoded, err := share.Decode(input, c)
		require.NoError(t, err, input)
		assert.Equal(t, b, decoded)
	}
}

func TestVersion(t *testing.T) {
	c, b := sample(t)
	v, err := share.Version(share.Encode(b, c.Version))
	require.NoError(t, err)
	assert.Equal(t, c.Version, v)

	v, err = share.Version(share.Encode(b, ""))
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestDecodeRejects(t *testing.T) {
	c, b := sample(t)
	query := share.Encode(b, c.Version)

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "bad escape", query: "h=%zz", want: "parse"},
		{name: "missing slot", query: strings.Replace(query, "h=hd-011-melander&", "", 1), want: `"h"`},
		{name: "unknown part", query: strings.Replace(query, "hd-011-melander", "hd-999", 1), want: "hd-999"},
		{name: "other version", query: strings.Replace(query, "v=v1.06.1", "v=v0.01", 1), want: "v0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := share.Decode(tt.query, c)
			require.ErrorIs(t, err, share.ErrMalformedQuery)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeRejectsWrongSlot(t *testing.T) {
	c, b := sample(t)
	query := strings.Replace(share.Encode(b, ""), "h=hd-011-melander", "h=cc-2000-orbiter", 1)

	_, err := share.Decode(query, c)
	var wrong *assembly.WrongKindError
	require.True(t, errors.As(err, &wrong))
	assert.Equal(t, parts.Head, wrong.Slot)
}
