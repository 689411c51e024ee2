package schemaguard

import (
	"errors"
	"fmt"
)

// Sentinel errors for common validator error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidConfig indicates the provided configuration is invalid or incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNilSchema indicates Validate was called without a schema node.
	ErrNilSchema = errors.New("nil schema")

	// ErrDecode indicates a document could not be decoded into a value.
	ErrDecode = errors.New("decode failed")
)

// Error kinds categorize errors by their type.
const (
	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"

	// KindInput represents errors caused by the arguments of a call, such as a
	// nil schema or an undecodable document.
	KindInput = "input"

	// KindInternal represents internal consistency faults raised while
	// checking a value, such as an unknown type atom.
	KindInternal = "internal"
)

// Error is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of error.
//
// Validation failures of user data are never reported as an Error; they are
// returned as records in a Result.
type Error struct {
	// Op is the operation that failed (e.g., "Validator.Validate", "LoadConfig").
	Op string

	// Kind categorizes the error (e.g., KindConfiguration, KindInternal).
	Kind string

	// Path is the document location being checked when the error occurred (optional).
	Path string

	// Err is the underlying error that caused this error.
	Err error
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("schemaguard: %s: %s", e.Op, e.Kind)
	}
	if e.Path != "" {
		return fmt.Sprintf("schemaguard: %s (%s) at %s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("schemaguard: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison based on
// the underlying error or the Error itself.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	// Match if both Op and Kind are the same, or if Kind matches and Op is empty in target
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// NewConfigurationError creates a new Error with KindConfiguration.
func NewConfigurationError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindConfiguration,
		Err:  err,
	}
}

// NewInputError creates a new Error with KindInput.
func NewInputError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInput,
		Err:  err,
	}
}

// NewInternalError creates a new Error with KindInternal.
func NewInternalError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInternal,
		Err:  err,
	}
}
