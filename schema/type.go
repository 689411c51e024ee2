package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TypeKind identifies the shape of a declared "type" keyword.
type TypeKind uint8

const (
	// TypeUnset means the node declares no "type" keyword.
	TypeUnset TypeKind = iota

	// TypeSingle is a single atom name, e.g. "type": "string".
	TypeSingle

	// TypeUnion is an ordered list of atoms and/or sub-schemas.
	TypeUnion

	// TypeInline is a sub-schema used in place of a type name.
	TypeInline
)

// String returns a lowercase name for the kind.
func (k TypeKind) String() string {
	switch k {
	case TypeUnset:
		return "unset"
	case TypeSingle:
		return "single"
	case TypeUnion:
		return "union"
	case TypeInline:
		return "inline"
	default:
		return fmt.Sprintf("TypeKind(%d)", uint8(k))
	}
}

// Member is one alternative of a union type: either an atom or a full
// sub-schema matched structurally.
type Member struct {
	Atom   Atom
	Schema *JSON
}

// AtomMember returns a union member naming a primitive type.
func AtomMember(a Atom) Member {
	return Member{Atom: a}
}

// SchemaMember returns a union member holding a copy of s.
func SchemaMember(s JSON) Member {
	return Member{Schema: &s}
}

// IsSchema reports whether the member is a sub-schema alternative.
func (m Member) IsSchema() bool {
	return m.Schema != nil
}

// Type is the value of a node's "type" keyword. The zero Type is unset.
//
// Atom names are stored as written; a name outside the vocabulary is only
// detected when a value is checked against it.
type Type struct {
	kind    TypeKind
	atom    Atom
	members []Member
	inline  *JSON
}

// Single returns a Type declaring one atom.
func Single(a Atom) Type {
	return Type{kind: TypeSingle, atom: a}
}

// Union returns a Type declaring an ordered list of alternatives.
func Union(members ...Member) Type {
	m := make([]Member, len(members))
	copy(m, members)
	return Type{kind: TypeUnion, members: m}
}

// Atoms is shorthand for a union made only of atoms.
func Atoms(atoms ...Atom) Type {
	members := make([]Member, 0, len(atoms))
	for _, a := range atoms {
		members = append(members, AtomMember(a))
	}
	return Type{kind: TypeUnion, members: members}
}

// Inline returns a Type whose whole value is the sub-schema s.
func Inline(s JSON) Type {
	return Type{kind: TypeInline, inline: &s}
}

// Kind returns the shape of the declaration.
func (t Type) Kind() TypeKind {
	return t.kind
}

// Atom returns the declared atom of a TypeSingle. It is AtomUnset otherwise.
func (t Type) Atom() Atom {
	return t.atom
}

// Members returns the alternatives of a TypeUnion in declared order.
func (t Type) Members() []Member {
	out := make([]Member, len(t.members))
	copy(out, t.members)
	return out
}

// Schema returns the sub-schema of a TypeInline, or nil.
func (t Type) Schema() *JSON {
	return t.inline
}

// IsZero reports whether the type is unset. yaml.v3 uses it for omitempty.
func (t Type) IsZero() bool {
	return t.kind == TypeUnset
}

// value converts t back into its document form.
func (t Type) value() any {
	switch t.kind {
	case TypeSingle:
		return string(t.atom)
	case TypeUnion:
		items := make([]any, 0, len(t.members))
		for _, m := range t.members {
			if m.IsSchema() {
				items = append(items, m.Schema)
				continue
			}
			items = append(items, string(m.Atom))
		}
		return items
	case TypeInline:
		return t.inline
	default:
		return nil
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Type) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = Type{}
		return nil
	}

	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return fmt.Errorf("unmarshal type: %w", err)
		}
		*t = Single(Atom(name))
		return nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("unmarshal type: %w", err)
		}
		members := make([]Member, 0, len(items))
		for i, item := range items {
			m, err := memberFromJSON(item)
			if err != nil {
				return fmt.Errorf("type[%d]: %w", i, err)
			}
			members = append(members, m)
		}
		*t = Type{kind: TypeUnion, members: members}
		return nil
	case '{':
		var s JSON
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("unmarshal inline type: %w", err)
		}
		*t = Inline(s)
		return nil
	default:
		return fmt.Errorf("type must be a string, an array or an object, got %s", data)
	}
}

func memberFromJSON(data json.RawMessage) (Member, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 {
		switch data[0] {
		case '"':
			var name string
			if err := json.Unmarshal(data, &name); err != nil {
				return Member{}, err
			}
			return AtomMember(Atom(name)), nil
		case '{':
			var s JSON
			if err := json.Unmarshal(data, &s); err != nil {
				return Member{}, err
			}
			return SchemaMember(s), nil
		}
	}
	return Member{}, fmt.Errorf("union member must be a type name or a schema, got %s", data)
}

// MarshalYAML implements the yaml.Marshaler interface.
func (t Type) MarshalYAML() (any, error) {
	return t.value(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (t *Type) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.AliasNode:
		return t.UnmarshalYAML(value.Alias)
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*t = Type{}
			return nil
		}
		*t = Single(Atom(value.Value))
		return nil
	case yaml.SequenceNode:
		members := make([]Member, 0, len(value.Content))
		for i, item := range value.Content {
			if item.Kind == yaml.AliasNode {
				item = item.Alias
			}
			switch item.Kind {
			case yaml.ScalarNode:
				if item.Tag == "!!null" {
					members = append(members, AtomMember(AtomNull))
					continue
				}
				members = append(members, AtomMember(Atom(item.Value)))
			case yaml.MappingNode:
				var s JSON
				if err := item.Decode(&s); err != nil {
					return fmt.Errorf("type[%d]: %w", i, err)
				}
				members = append(members, SchemaMember(s))
			default:
				return fmt.Errorf("type[%d]: union member must be a type name or a schema (line %d)", i, item.Line)
			}
		}
		*t = Type{kind: TypeUnion, members: members}
		return nil
	case yaml.MappingNode:
		var s JSON
		if err := value.Decode(&s); err != nil {
			return fmt.Errorf("unmarshal inline type: %w", err)
		}
		*t = Inline(s)
		return nil
	default:
		return fmt.Errorf("type must be a string, a sequence or a mapping (line %d)", value.Line)
	}
}
