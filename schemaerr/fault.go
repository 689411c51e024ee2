package schemaerr

import (
	"errors"
	"fmt"
	"strings"
)

// Fault codes.
const (
	// ErrCodeUnknownAtom indicates a type atom outside the vocabulary reached the type checker
	ErrCodeUnknownAtom = "UNKNOWN_ATOM"

	// ErrCodeNoWording indicates a type atom has no entry in the wording catalog
	ErrCodeNoWording = "NO_WORDING"

	// ErrCodeDepthExceeded indicates nested sub-schemas went deeper than the configured limit
	ErrCodeDepthExceeded = "DEPTH_EXCEEDED"

	// ErrCodeNoNested indicates a sub-schema had to be validated but no nested validator was supplied
	ErrCodeNoNested = "NO_NESTED_VALIDATOR"
)

// Sentinel errors matched by Fault.Is through the fault code.
var (
	// ErrUnknownAtom is matched by faults with ErrCodeUnknownAtom
	ErrUnknownAtom = errors.New("unknown type atom")

	// ErrNoWording is matched by faults with ErrCodeNoWording
	ErrNoWording = errors.New("no wording available")

	// ErrDepthExceeded is matched by faults with ErrCodeDepthExceeded
	ErrDepthExceeded = errors.New("schema nesting too deep")

	// ErrNoNested is matched by faults with ErrCodeNoNested
	ErrNoNested = errors.New("nested validator unavailable")
)

var sentinels = map[string]error{
	ErrCodeUnknownAtom:   ErrUnknownAtom,
	ErrCodeNoWording:     ErrNoWording,
	ErrCodeDepthExceeded: ErrDepthExceeded,
	ErrCodeNoNested:      ErrNoNested,
}

// Fault is an internal consistency failure: the schema vocabulary or the
// validator configuration is broken. Unlike a Record it aborts the check.
type Fault struct {
	// Op is the operation that detected the fault (e.g. "TypeChecker.ValidateType")
	Op string

	// Code is one of the ErrCode constants
	Code string

	// Atom is the offending type atom, if any
	Atom string

	// Message is a human-readable description
	Message string

	// Cause is the underlying error, if any
	Cause error
}

// NewFault creates a new fault.
//
// Example:
//
//	err := schemaerr.NewFault("Catalog.Lookup", schemaerr.ErrCodeNoWording, "no wording available for type atom \"x\"")
func NewFault(op, code, message string) *Fault {
	return &Fault{
		Op:      op,
		Code:    code,
		Message: message,
	}
}

// WithAtom records the offending atom. It returns the same fault for chaining.
func (f *Fault) WithAtom(atom string) *Fault {
	f.Atom = atom
	return f
}

// WithCause sets the underlying error. It returns the same fault for chaining.
func (f *Fault) WithCause(err error) *Fault {
	f.Cause = err
	return f
}

// Error formats the fault as "op [code]: message: cause".
func (f *Fault) Error() string {
	parts := []string{fmt.Sprintf("%s [%s]", f.Op, f.Code)}
	if f.Message != "" {
		parts = append(parts, f.Message)
	}
	if f.Cause != nil {
		parts = append(parts, f.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause.
func (f *Fault) Unwrap() error {
	return f.Cause
}

// Is matches another *Fault with the same Code (and Op, when the target sets
// one), or the sentinel error associated with the fault's Code.
func (f *Fault) Is(target error) bool {
	if t, ok := target.(*Fault); ok {
		return f.Code == t.Code && (t.Op == "" || f.Op == t.Op)
	}
	sentinel, ok := sentinels[f.Code]
	return ok && sentinel == target
}

// IsFault reports whether err is or wraps a *Fault.
func IsFault(err error) bool {
	var f *Fault
	return errors.As(err, &f)
}
