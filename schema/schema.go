package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// JSON represents a JSON Schema node.
//
// Only the "type" keyword is modelled; every other keyword is carried
// opaquely in Keywords for the constraints that understand it.
type JSON struct {
	Type        Type
	Title       string
	Description string

	// Keywords holds the remaining keywords of the node as generic decoded values.
	Keywords map[string]any
}

// Any creates a JSON schema that accepts any value.
func Any() JSON {
	return JSON{}
}

// String creates a JSON schema for a string type.
func String() JSON {
	return JSON{Type: Single(AtomString)}
}

// StringWithDesc creates a JSON schema for a string type with a description.
func StringWithDesc(desc string) JSON {
	return JSON{
		Type:        Single(AtomString),
		Description: desc,
	}
}

// Email creates a JSON schema using the legacy email type.
func Email() JSON {
	return JSON{Type: Single(AtomEmail)}
}

// Int creates a JSON schema for an integer type.
func Int() JSON {
	return JSON{Type: Single(AtomInteger)}
}

// Number creates a JSON schema for a number type.
func Number() JSON {
	return JSON{Type: Single(AtomNumber)}
}

// Bool creates a JSON schema for a boolean type.
func Bool() JSON {
	return JSON{Type: Single(AtomBoolean)}
}

// Null creates a JSON schema for the null type.
func Null() JSON {
	return JSON{Type: Single(AtomNull)}
}

// Array creates a JSON schema for an array type.
func Array() JSON {
	return JSON{Type: Single(AtomArray)}
}

// Object creates a JSON schema for an object type.
func Object() JSON {
	return JSON{Type: Single(AtomObject)}
}

// OneOfTypes creates a JSON schema whose type is a union of atoms.
func OneOfTypes(atoms ...Atom) JSON {
	return JSON{Type: Atoms(atoms...)}
}

// Nullable creates a JSON schema accepting a or null.
func Nullable(a Atom) JSON {
	return JSON{Type: Atoms(a, AtomNull)}
}

// WithDescription returns a copy of the schema with the description set.
func (s JSON) WithDescription(desc string) JSON {
	s.Description = desc
	return s
}

// WithKeyword returns a copy of the schema with an extra keyword set.
// The receiver's keyword map is not modified.
func (s JSON) WithKeyword(name string, value any) JSON {
	keywords := make(map[string]any, len(s.Keywords)+1)
	for k, v := range s.Keywords {
		keywords[k] = v
	}
	keywords[name] = value
	s.Keywords = keywords
	return s
}

// Keyword returns the value of an opaque keyword.
func (s JSON) Keyword(name string) (any, bool) {
	v, ok := s.Keywords[name]
	return v, ok
}

func (s JSON) document() map[string]any {
	doc := make(map[string]any, len(s.Keywords)+3)
	for k, v := range s.Keywords {
		doc[k] = v
	}
	if !s.Type.IsZero() {
		doc["type"] = s.Type
	}
	if s.Title != "" {
		doc["title"] = s.Title
	}
	if s.Description != "" {
		doc["description"] = s.Description
	}
	return doc
}

// MarshalJSON implements the json.Marshaler interface.
func (s JSON) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.document())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *JSON) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal schema: %w", err)
	}

	out := JSON{}
	for key, value := range raw {
		switch key {
		case "type":
			if err := out.Type.UnmarshalJSON(value); err != nil {
				return err
			}
		case "title":
			if err := json.Unmarshal(value, &out.Title); err != nil {
				return fmt.Errorf("unmarshal title: %w", err)
			}
		case "description":
			if err := json.Unmarshal(value, &out.Description); err != nil {
				return fmt.Errorf("unmarshal description: %w", err)
			}
		default:
			dec := json.NewDecoder(bytes.NewReader(value))
			dec.UseNumber()
			var v any
			if err := dec.Decode(&v); err != nil {
				return fmt.Errorf("unmarshal keyword %s: %w", key, err)
			}
			if out.Keywords == nil {
				out.Keywords = make(map[string]any)
			}
			out.Keywords[key] = v
		}
	}

	*s = out
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (s JSON) MarshalYAML() (any, error) {
	return s.document(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (s *JSON) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("schema must be a mapping (line %d)", value.Line)
	}

	out := JSON{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, node := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "type":
			if err := out.Type.UnmarshalYAML(node); err != nil {
				return err
			}
		case "title":
			if err := node.Decode(&out.Title); err != nil {
				return fmt.Errorf("unmarshal title: %w", err)
			}
		case "description":
			if err := node.Decode(&out.Description); err != nil {
				return fmt.Errorf("unmarshal description: %w", err)
			}
		default:
			var v any
			if err := node.Decode(&v); err != nil {
				return fmt.Errorf("unmarshal keyword %s: %w", key.Value, err)
			}
			if out.Keywords == nil {
				out.Keywords = make(map[string]any)
			}
			out.Keywords[key.Value] = v
		}
	}

	*s = out
	return nil
}
