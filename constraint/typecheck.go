package constraint

import (
	"fmt"

	"github.com/zero-day-ai/schemaguard/kind"
	"github.com/zero-day-ai/schemaguard/schema"
	"github.com/zero-day-ai/schemaguard/schemaerr"
)

// ValidateType reports whether value satisfies a single atom. Structural
// objects and arrays are decided by classifier. An atom outside the
// vocabulary is a fault.
func ValidateType(value any, atom schema.Atom, classifier kind.Classifier) (bool, error) {
	switch atom {
	case schema.AtomUnset, schema.AtomAny:
		return true, nil
	case schema.AtomInteger:
		return kind.Of(value) == kind.Integer, nil
	case schema.AtomNumber:
		return kind.Of(value).IsNumeric(), nil
	case schema.AtomBoolean:
		return kind.Of(value) == kind.Boolean, nil
	case schema.AtomObject:
		return classifier.IsObject(value), nil
	case schema.AtomArray:
		return classifier.IsArray(value), nil
	case schema.AtomString, schema.AtomEmail:
		return kind.Of(value) == kind.String, nil
	case schema.AtomNull:
		return kind.Of(value) == kind.Null, nil
	default:
		return false, schemaerr.NewFault("TypeChecker.ValidateType", schemaerr.ErrCodeUnknownAtom,
			fmt.Sprintf("invalid type atom used as constraint: %q", atom)).
			WithAtom(atom.String())
	}
}
