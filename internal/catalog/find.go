package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

// PartNotFoundError reports a query that matched nothing mountable on Slot.
type PartNotFoundError struct {
	Slot  parts.Slot
	Query string
}

func (e *PartNotFoundError) Error() string {
	return fmt.Sprintf(messages.CatalogPartNotFoundFmt, e.Slot, e.Query)
}

// Unwrap lets errors.Is match ErrPartNotFound.
func (e *PartNotFoundError) Unwrap() error { return ErrPartNotFound }

// AmbiguousPartError reports a query that matched several parts by name.
type AmbiguousPartError struct {
	Slot    parts.Slot
	Query   string
	Matches []parts.Part
}

func (e *AmbiguousPartError) Error() string {
	names := make([]string, len(e.Matches))
	for i, p := range e.Matches {
		names[i] = p.ID
	}
	return fmt.Sprintf(messages.CatalogAmbiguousPartFmt, e.Query, e.Slot, strings.Join(names, ", "))
}

// Unwrap lets errors.Is match ErrAmbiguousPart.
func (e *AmbiguousPartError) Unwrap() error { return ErrAmbiguousPart }

// Find resolves query to a part mountable on slot. An exact id wins; otherwise
// names and ids are compared after NFKC normalization and case folding, first in
// full and then as substrings. Several matches at the same stage are ambiguous.
func (c *Catalog) Find(slot parts.Slot, query string) (parts.Part, error) {
	pool := c.Pool(slot)
	for _, p := range pool {
		if p.ID == query {
			return p, nil
		}
	}

	key := normalize(query)
	if key == "" {
		return parts.Part{}, &PartNotFoundError{Slot: slot, Query: query}
	}
	stages := []func(p parts.Part) bool{
		func(p parts.Part) bool { return normalize(p.Name) == key || normalize(p.ID) == key },
		func(p parts.Part) bool { return strings.Contains(normalize(p.Name), key) },
	}
	for _, match := range stages {
		var found []parts.Part
		for _, p := range pool {
			if match(p) {
				found = append(found, p)
			}
		}
		switch len(found) {
		case 0:
			continue
		case 1:
			return found[0], nil
		default:
			return parts.Part{}, &AmbiguousPartError{Slot: slot, Query: query, Matches: found}
		}
	}
	return parts.Part{}, &PartNotFoundError{Slot: slot, Query: query}
}

// normalize folds width and case so "ＬＵＤＬＯＷ" and "ludlow" compare equal.
func normalize(s string) string {
	return cases.Fold().String(norm.NFKC.String(strings.TrimSpace(s)))
}
