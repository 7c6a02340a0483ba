// Package share encodes builds as compact query strings of part ids.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/assembly"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

// VersionKey holds the catalog version a query was encoded against.
const VersionKey = "v"

// ErrMalformedQuery is matched with errors.Is for every decode failure.
var ErrMalformedQuery = errors.New("malformed build query")

var slotKeys = map[parts.Slot]string{
	parts.RightArmUnit:  "rau",
	parts.LeftArmUnit:   "lau",
	parts.RightBackUnit: "rbu",
	parts.LeftBackUnit:  "lbu",
	parts.Head:          "h",
	parts.Core:          "c",
	parts.Arms:          "a",
	parts.Legs:          "l",
	parts.Booster:       "b",
	parts.FCS:           "f",
	parts.Generator:     "g",
	parts.Expansion:     "e",
}

// Key returns the query parameter used for slot.
func Key(slot parts.Slot) string {
	return slotKeys[slot]
}

// Encode returns the query for b. Parameters are sorted by key so equal builds
// encode to equal strings.
func Encode(b assembly.Build, version string) string {
	values := url.Values{}
	for _, sp := range b.Parts() {
		values.Set(Key(sp.Slot), sp.Part.ID)
	}
	if version != "" {
		values.Set(VersionKey, version)
	}
	return values.Encode()
}

// Version returns the catalog version recorded in query, or "" when absent.
func Version(query string) (string, error) {
	values, err := parse(query)
	if err != nil {
		return "", err
	}
	return values.Get(VersionKey), nil
}

// Decode resolves every slot of query against c. A recorded version must match
// the catalog's.
func Decode(query string, c *catalog.Catalog) (assembly.Build, error) {
	values, err := parse(query)
	if err != nil {
		return assembly.Build{}, err
	}
	if v := values.Get(VersionKey); v != "" && v != c.Version {
		return assembly.Build{}, fmt.Errorf("%w: "+messages.ShareVersionMismatchFmt, ErrMalformedQuery, v, c.Version)
	}

	selection := make(map[parts.Slot]parts.Part, len(slotKeys))
	for _, slot := range parts.Slots() {
		id := values.Get(Key(slot))
		if id == "" {
			return assembly.Build{}, fmt.Errorf("%w: "+messages.ShareMissingKeyFmt, ErrMalformedQuery, Key(slot), slot)
		}
		p, ok := c.ByID(id)
		if !ok {
			return assembly.Build{}, fmt.Errorf("%w: "+messages.ShareUnknownPartFmt, ErrMalformedQuery, id, slot)
		}
		selection[slot] = p
	}
	return assembly.New(selection)
}

// parse accepts a bare query, a query with a leading '?', or a full URL.
func parse(query string) (url.Values, error) {
	query = strings.TrimSpace(query)
	if strings.Contains(query, "://") {
		u, err := url.Parse(query)
		if err != nil {
			return nil, fmt.Errorf("%w: "+messages.ShareParseFmt, ErrMalformedQuery, err)
		}
		query = u.RawQuery
	}
	values, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return nil, fmt.Errorf("%w: "+messages.ShareParseFmt, ErrMalformedQuery, err)
	}
	return values, nil
}
