package schemaguard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zero-day-ai/schemaguard/constraint"
	"github.com/zero-day-ai/schemaguard/schema"
	"github.com/zero-day-ai/schemaguard/schemaerr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Validator checks values against schema nodes.
//
// A Validator is immutable after New and safe for concurrent use, provided
// the constraints given to WithConstraints are.
type Validator struct {
	logger      *slog.Logger
	tracer      trace.Tracer
	metrics     *otelMetrics
	constraints []constraint.Constraint
	maxDepth    int
}

// Result holds the records produced by one validation.
type Result struct {
	Errors []schemaerr.Record
}

// Valid reports whether no constraint failed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// New creates a Validator. The type constraint is always installed first.
func New(opts ...Option) (*Validator, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cfg := o.config
	if o.configPath != "" {
		loaded, err := LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if cfg != nil {
		if err := cfg.Validate(); err != nil {
			return nil, NewConfigurationError("New", err)
		}
	}

	logger := o.logger
	if logger == nil {
		if level, ok := cfg.GetLogLevel(); ok {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		} else {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
	}

	classifier := o.classifier
	if classifier == nil {
		classifier = cfg.GetClassifier()
	}

	maxDepth := o.maxDepth
	if maxDepth <= 0 {
		maxDepth = cfg.GetMaxDepth()
	}

	tracer := o.tracer
	if tracer == nil {
		tracer = tracenoop.NewTracerProvider().Tracer(instrumentationName)
	}

	mp := o.meterProvider
	if mp == nil {
		mp = metricnoop.NewMeterProvider()
	}
	metrics, err := newOTelMetrics(mp)
	if err != nil {
		// Metrics are optional; validation works without them.
		logger.Warn("failed to initialize metrics", "error", err)
	}

	constraints := make([]constraint.Constraint, 0, len(o.constraints)+1)
	constraints = append(constraints, constraint.NewType(o.catalog, classifier))
	constraints = append(constraints, o.constraints...)

	logger.Debug("validator created",
		"max_depth", maxDepth,
		"constraints", len(constraints))

	return &Validator{
		logger:      logger,
		tracer:      tracer,
		metrics:     metrics,
		constraints: constraints,
		maxDepth:    maxDepth,
	}, nil
}

// Validate checks value against node at the document root.
func (v *Validator) Validate(ctx context.Context, value any, node *schema.JSON) (Result, error) {
	return v.ValidateAt(ctx, value, node, "")
}

// ValidateAt checks value against node. path locates value in its document
// and is copied into every record unchanged.
//
// User-data failures are returned in the Result. A returned error is always
// an *Error: KindInput for a nil node, KindInternal when a fault (such as an
// unknown type atom) aborted the check.
func (v *Validator) ValidateAt(ctx context.Context, value any, node *schema.JSON, path string) (Result, error) {
	const op = "Validator.Validate"
	if node == nil {
		return Result{}, NewInputError(op, ErrNilSchema)
	}

	ctx, span := v.tracer.Start(ctx, "schemaguard.Validate",
		trace.WithAttributes(attribute.String("schemaguard.path", path)))
	defer span.End()

	records, err := v.check(value, node, path, 0)
	v.metrics.record(ctx, records, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation aborted")
		v.logger.WarnContext(ctx, "validation aborted", "path", path, "error", err)
		e := NewInternalError(op, err)
		e.Path = path
		return Result{}, e
	}

	span.SetAttributes(
		attribute.Int("schemaguard.errors", len(records)),
		attribute.Bool("schemaguard.valid", len(records) == 0),
	)
	for _, r := range records {
		v.logger.DebugContext(ctx, "constraint failed",
			"path", r.Path,
			"code", r.Code,
			"message", r.Message)
	}

	return Result{Errors: records}, nil
}

// ValidateJSON decodes a JSON document with DecodeJSON and validates it.
func (v *Validator) ValidateJSON(ctx context.Context, data []byte, node *schema.JSON) (Result, error) {
	value, err := DecodeJSON(data)
	if err != nil {
		return Result{}, NewInputError("Validator.ValidateJSON", err)
	}
	return v.Validate(ctx, value, node)
}

// ValidateYAML decodes a YAML document with DecodeYAML and validates it.
func (v *Validator) ValidateYAML(ctx context.Context, data []byte, node *schema.JSON) (Result, error) {
	value, err := DecodeYAML(data)
	if err != nil {
		return Result{}, NewInputError("Validator.ValidateYAML", err)
	}
	return v.Validate(ctx, value, node)
}

// check runs every constraint against one node with a fresh record collection.
func (v *Validator) check(value any, node *schema.JSON, path string, depth int) ([]schemaerr.Record, error) {
	sink := &schemaerr.Collector{}
	env := constraint.Env{
		Sink:   sink,
		Nested: nested{v: v, depth: depth},
	}

	for _, c := range v.constraints {
		if err := c.Check(env, value, node, path); err != nil {
			return nil, err
		}
	}

	return sink.Records(), nil
}

// nested hands sub-schemas back to the owning Validator one level deeper.
type nested struct {
	v     *Validator
	depth int
}

func (n nested) ValidateNested(value any, node *schema.JSON, path string) ([]schemaerr.Record, error) {
	if n.depth >= n.v.maxDepth {
		return nil, schemaerr.NewFault("Validator.ValidateNested", schemaerr.ErrCodeDepthExceeded,
			fmt.Sprintf("sub-schemas nested deeper than %d levels", n.v.maxDepth))
	}
	if node == nil {
		return nil, nil
	}
	return n.v.check(value, node, path, n.depth+1)
}
