package schemaguard

import (
	"log/slog"

	"github.com/zero-day-ai/schemaguard/constraint"
	"github.com/zero-day-ai/schemaguard/kind"
	"github.com/zero-day-ai/schemaguard/wording"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Validator.
type Option func(*options)

// options holds configuration gathered before a Validator is built.
// Explicit options take precedence over values from a config file.
type options struct {
	configPath    string
	config        *Config
	logger        *slog.Logger
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
	classifier    kind.Classifier
	catalog       *wording.Catalog
	maxDepth      int
	constraints   []constraint.Constraint
}

// WithConfig sets the path of a YAML configuration file read by New.
func WithConfig(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithSettings supplies an already parsed configuration.
// It is ignored when WithConfig is also given.
func WithSettings(cfg *Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger sets a custom logger for the validator.
// If not provided, logging is discarded unless the config sets log_level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. Each top-level validation
// becomes one span.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider used for the
// validation and type-violation counters.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

// WithClassifier sets the structural classification strategy.
// It overrides the config file's classification.
func WithClassifier(c kind.Classifier) Option {
	return func(o *options) {
		o.classifier = c
	}
}

// WithCatalog replaces the wording catalog used in type diagnostics.
func WithCatalog(c *wording.Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// WithMaxDepth bounds how deeply sub-schemas may nest.
// It overrides the config file's max_depth.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithConstraints appends sibling constraints. They run after the type
// constraint, in the given order, on every node.
func WithConstraints(cs ...constraint.Constraint) Option {
	return func(o *options) {
		o.constraints = append(o.constraints, cs...)
	}
}
