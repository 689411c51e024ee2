// Package schemaguard validates decoded values against the "type" keyword of
// JSON Schema nodes and reports precisely worded diagnostics.
//
// # Core Concepts
//
//   - Schema nodes: schema.JSON, whose Type is unset, a single atom, a union
//     of atoms and sub-schemas, or an inline sub-schema
//   - Constraints: the type constraint (package constraint) plus any sibling
//     constraints supplied with WithConstraints
//   - Records: user-data failures, collected per validation and returned in a Result
//   - Faults: internal consistency failures (package schemaerr) that abort a
//     validation and are returned as an *Error
//
// # Getting Started
//
//	v, err := schemaguard.New(
//		schemaguard.WithLogger(logger),
//		schemaguard.WithClassifier(kind.Loose),
//	)
//	if err != nil {
//		return err
//	}
//
//	node := schema.OneOfTypes(schema.AtomNumber, schema.AtomString, schema.AtomBoolean)
//	res, err := v.Validate(ctx, nil, &node)
//	if err != nil {
//		return err // a fault: the schema or configuration is broken
//	}
//	for _, r := range res.Errors {
//		fmt.Println(r) // [/] Null value found, but a number, a string or a boolean is required
//	}
//
// # Values
//
// Values are generic decoded documents. Use DecodeJSON rather than
// json.Unmarshal so that integers keep their kind; DecodeYAML wraps
// gopkg.in/yaml.v3. The diagnostic label of a value comes from its low-level
// kind, so a float64 is reported as "Double".
//
// # Configuration
//
// Options may be combined with a YAML file passed to WithConfig:
//
//	classification: loose   # strict (default) or loose
//	max_depth: 32           # sub-schema nesting limit, default 64
//	log_level: debug        # builds a stderr logger when WithLogger is not used
//
// Explicit options win over file values.
//
// # Observability
//
// WithTracer enables one span per validation and WithMeterProvider the
// counters schemaguard.validations and schemaguard.type_violations. Both
// default to no-op implementations.
//
// # Thread Safety
//
// A Validator is immutable after New and may be shared between goroutines.
// Each validation collects its records separately.
package schemaguard
