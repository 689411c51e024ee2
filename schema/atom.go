package schema

// Atom is a primitive type name accepted by the "type" keyword.
//
// The vocabulary is closed: the constants below are the only atoms a
// validator understands. Any other name found in a schema document is kept
// verbatim so that the type constraint can report it as a fault.
type Atom string

const (
	// AtomUnset is the zero Atom. It places no constraint on a value.
	AtomUnset Atom = ""

	AtomInteger Atom = "integer"
	AtomNumber  Atom = "number"
	AtomBoolean Atom = "boolean"
	AtomObject  Atom = "object"
	AtomArray   Atom = "array"
	AtomString  Atom = "string"

	// AtomEmail is a legacy alias validated exactly like AtomString.
	AtomEmail Atom = "email"

	AtomNull Atom = "null"

	// AtomAny accepts every value.
	AtomAny Atom = "any"
)

var vocabulary = []Atom{
	AtomInteger,
	AtomNumber,
	AtomBoolean,
	AtomObject,
	AtomArray,
	AtomString,
	AtomEmail,
	AtomNull,
	AtomAny,
}

// Vocabulary returns the declarable atoms in a stable order. AtomUnset is not included.
func Vocabulary() []Atom {
	out := make([]Atom, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// Known reports whether a is part of the vocabulary. AtomUnset is considered known.
func (a Atom) Known() bool {
	if a == AtomUnset {
		return true
	}
	for _, v := range vocabulary {
		if v == a {
			return true
		}
	}
	return false
}

// String returns the atom name as written in a schema.
func (a Atom) String() string {
	return string(a)
}
