// Package wording holds the phrases used to describe expected types in
// diagnostics and composes them into messages.
package wording

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zero-day-ai/schemaguard/schema"
	"github.com/zero-day-ai/schemaguard/schemaerr"
)

// Catalog maps type atoms to phrases such as "an integer".
// A Catalog is immutable once built and safe for concurrent use.
type Catalog struct {
	phrases map[schema.Atom]string
	known   string
}

var defaultCatalog = mustCatalog(map[schema.Atom]string{
	schema.AtomInteger: "an integer",
	schema.AtomNumber:  "a number",
	schema.AtomBoolean: "a boolean",
	schema.AtomObject:  "an object",
	schema.AtomArray:   "an array",
	schema.AtomString:  "a string",
	schema.AtomEmail:   "an email",
	schema.AtomNull:    "a null",
})

// Default returns the built-in English catalog.
func Default() *Catalog {
	return defaultCatalog
}

// NewCatalog builds a catalog from phrases. Every atom of the vocabulary
// except schema.AtomAny must have a non-empty phrase, and no other atom may
// appear. AtomAny always maps to an empty phrase because it never fails.
func NewCatalog(phrases map[schema.Atom]string) (*Catalog, error) {
	table := make(map[schema.Atom]string, len(phrases)+1)
	for atom, phrase := range phrases {
		if atom == schema.AtomUnset || !atom.Known() {
			return nil, fmt.Errorf("wording for %q: not a type atom", atom)
		}
		if atom == schema.AtomAny {
			continue
		}
		table[atom] = phrase
	}

	var missing []string
	for _, atom := range schema.Vocabulary() {
		if atom == schema.AtomAny {
			continue
		}
		if table[atom] == "" {
			missing = append(missing, atom.String())
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing wording for type atoms: %s", strings.Join(missing, ", "))
	}
	table[schema.AtomAny] = ""

	names := make([]string, 0, len(table))
	for atom := range table {
		names = append(names, atom.String())
	}
	sort.Strings(names)

	return &Catalog{phrases: table, known: strings.Join(names, ", ")}, nil
}

func mustCatalog(phrases map[schema.Atom]string) *Catalog {
	c, err := NewCatalog(phrases)
	if err != nil {
		panic("wording: " + err.Error())
	}
	return c
}

// Lookup returns the phrase for atom. AtomUnset and AtomAny have an empty
// phrase. An atom without an entry is a fault.
func (c *Catalog) Lookup(atom schema.Atom) (string, error) {
	if atom == schema.AtomUnset {
		return "", nil
	}
	phrase, ok := c.phrases[atom]
	if !ok {
		return "", schemaerr.NewFault("Catalog.Lookup", schemaerr.ErrCodeNoWording,
			fmt.Sprintf("no wording available for type atom %q; known atoms: %s", atom, c.known)).
			WithAtom(atom.String())
	}
	return phrase, nil
}

// Known returns the atoms with an entry, sorted by name.
func (c *Catalog) Known() []schema.Atom {
	out := make([]schema.Atom, 0, len(c.phrases))
	for atom := range c.phrases {
		out = append(out, atom)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
