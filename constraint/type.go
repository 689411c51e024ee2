package constraint

import (
	"fmt"

	"github.com/zero-day-ai/schemaguard/kind"
	"github.com/zero-day-ai/schemaguard/schema"
	"github.com/zero-day-ai/schemaguard/schemaerr"
	"github.com/zero-day-ai/schemaguard/wording"
)

// Type enforces the "type" keyword.
//
// A Type is stateless after construction and safe for concurrent use as
// long as its Classifier is.
type Type struct {
	catalog    *wording.Catalog
	classifier kind.Classifier
}

// NewType returns the type constraint. A nil catalog selects
// wording.Default and a nil classifier selects kind.Strict.
func NewType(catalog *wording.Catalog, classifier kind.Classifier) *Type {
	if catalog == nil {
		catalog = wording.Default()
	}
	if classifier == nil {
		classifier = kind.Strict
	}
	return &Type{catalog: catalog, classifier: classifier}
}

// Name returns the keyword handled by the constraint.
func (t *Type) Name() string {
	return schemaerr.CodeType
}

// Check validates value against node.Type and appends at most one record to
// env.Sink. An inline sub-schema is handed to env.Nested and its records are
// forwarded unchanged.
func (t *Type) Check(env Env, value any, node *schema.JSON, path string) error {
	if node == nil {
		return nil
	}

	var out Outcome
	switch node.Type.Kind() {
	case schema.TypeUnset:
		return nil
	case schema.TypeInline:
		records, err := validateNested(env, value, node.Type.Schema(), path)
		if err != nil {
			return err
		}
		for _, r := range records {
			env.Sink.Add(r)
		}
		return nil
	case schema.TypeUnion:
		var err error
		out, err = t.ResolveUnion(env, value, node.Type.Members(), path)
		if err != nil {
			return err
		}
	default:
		atom := node.Type.Atom()
		valid, err := ValidateType(value, atom, t.classifier)
		if err != nil {
			return err
		}
		out.Valid = valid
		if !valid {
			phrase, err := t.catalog.Lookup(atom)
			if err != nil {
				return err
			}
			out.Wordings = append(out.Wordings, phrase)
		}
	}

	if out.Valid {
		return nil
	}

	env.Sink.Add(schemaerr.Record{
		Path:    path,
		Message: fmt.Sprintf("%s value found, but %s is required", kind.Label(value), wording.Or(out.Wordings)),
		Code:    schemaerr.CodeType,
	})
	return nil
}

// ResolveUnion matches value against members in declared order and stops
// testing after the first match.
//
// Wordings are collected unevenly: an atom member always contributes its
// phrase, even after a match, while a sub-schema member contributes the
// object phrase only while nothing has matched yet. Diagnostics depend on
// this order, so it must not be normalised.
func (t *Type) ResolveUnion(env Env, value any, members []schema.Member, path string) (Outcome, error) {
	out := Outcome{}

	for _, m := range members {
		if m.IsSchema() {
			if out.Valid {
				continue
			}
			node := schema.JSON{Type: schema.Inline(*m.Schema)}
			records, err := validateNested(env, value, &node, path)
			if err != nil {
				return out, err
			}
			out.Valid = len(records) == 0

			phrase, err := t.catalog.Lookup(schema.AtomObject)
			if err != nil {
				return out, err
			}
			out.Wordings = append(out.Wordings, phrase)
			continue
		}

		phrase, err := t.catalog.Lookup(m.Atom)
		if err != nil {
			return out, err
		}
		if phrase != "" {
			out.Wordings = append(out.Wordings, phrase)
		}

		if !out.Valid {
			valid, err := ValidateType(value, m.Atom, t.classifier)
			if err != nil {
				return out, err
			}
			out.Valid = valid
		}
	}

	return out, nil
}

func validateNested(env Env, value any, node *schema.JSON, path string) ([]schemaerr.Record, error) {
	if env.Nested == nil {
		return nil, schemaerr.NewFault("TypeConstraint.Check", schemaerr.ErrCodeNoNested,
			"sub-schema type requires a nested validator")
	}
	return env.Nested.ValidateNested(value, node, path)
}
