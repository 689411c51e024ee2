// Package constraint implements schema constraints. The one shipped here is
// the "type" constraint; sibling constraints plug into the validator through
// the same Constraint interface.
package constraint

import (
	"github.com/zero-day-ai/schemaguard/schema"
	"github.com/zero-day-ai/schemaguard/schemaerr"
)

// Nested validates a value against a whole sub-schema. The validator that
// owns the constraints implements it; records come back in a fresh slice and
// are never written to the caller's sink.
type Nested interface {
	ValidateNested(value any, node *schema.JSON, path string) ([]schemaerr.Record, error)
}

// Env carries the collaborators of one check.
type Env struct {
	Sink   schemaerr.Sink
	Nested Nested
}

// Constraint checks one keyword of a schema node.
//
// Check appends a record to env.Sink for every user-data failure and returns
// an error only for faults, which abort the validation.
type Constraint interface {
	Name() string
	Check(env Env, value any, node *schema.JSON, path string) error
}

// Outcome is the result of matching a value against a type declaration.
// Wordings keep encounter order and may repeat.
type Outcome struct {
	Valid    bool
	Wordings []string
}
