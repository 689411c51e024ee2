// Package schema provides the JSON Schema node model used by schemaguard.
//
// A node is represented by JSON. Its "type" keyword is modelled precisely by
// Type, which takes one of four shapes:
//
//	{}                                       // TypeUnset: no constraint
//	{"type": "string"}                       // TypeSingle
//	{"type": ["string", {"type": "null"}]}   // TypeUnion of atoms and sub-schemas
//	{"type": {"type": "integer"}}            // TypeInline: the value is a sub-schema
//
// Every other keyword is kept opaquely in JSON.Keywords so that sibling
// constraints can read it.
//
// # Building schemas
//
//	nameSchema := schema.StringWithDesc("User's full name")
//	idSchema := schema.OneOfTypes(schema.AtomInteger, schema.AtomString)
//	optional := schema.Nullable(schema.AtomBoolean)
//
// # Decoding
//
// JSON and Type implement json.Unmarshaler and yaml.Unmarshaler, so schema
// documents can be decoded with encoding/json or gopkg.in/yaml.v3:
//
//	var node schema.JSON
//	if err := yaml.Unmarshal(data, &node); err != nil {
//		return err
//	}
//
// Atom names are not checked while decoding. A name outside the vocabulary
// (see Vocabulary) surfaces as a fault when a value is validated against it.
//
// # Deriving schemas from Go types
//
// FromType derives a schema from a Go type. Pointer fields become nullable:
//
//	type User struct {
//		Name  string  `json:"name"`
//		Email *string `json:"email,omitempty"`
//	}
//	s := schema.FromType(User{})
package schema
