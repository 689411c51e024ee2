package schemaguard

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/zero-day-ai/schemaguard/kind"
	"github.com/zero-day-ai/schemaguard/schema"
	"github.com/zero-day-ai/schemaguard/wording"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
)

func TestValidatorOptions(t *testing.T) {
	t.Run("WithConfig", func(t *testing.T) {
		o := &options{}
		WithConfig("/path/to/config.yaml")(o)

		if o.configPath != "/path/to/config.yaml" {
			t.Errorf("expected config path '/path/to/config.yaml', got %s", o.configPath)
		}
	})

	t.Run("WithSettings", func(t *testing.T) {
		cfg := &Config{Classification: kind.ClassificationLoose}
		o := &options{}
		WithSettings(cfg)(o)

		if o.config != cfg {
			t.Error("expected settings to be set")
		}
	})

	t.Run("WithLogger", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		o := &options{}
		WithLogger(logger)(o)

		if o.logger != logger {
			t.Error("expected logger to be set")
		}
	})

	t.Run("WithTracer", func(t *testing.T) {
		o := &options{}
		WithTracer(nil)(o)

		if o.tracer != nil {
			t.Error("expected tracer to be nil")
		}
	})

	t.Run("WithMeterProvider", func(t *testing.T) {
		mp := metricnoop.NewMeterProvider()
		o := &options{}
		WithMeterProvider(mp)(o)

		if o.meterProvider == nil {
			t.Error("expected meter provider to be set")
		}
	})

	t.Run("WithClassifier", func(t *testing.T) {
		o := &options{}
		WithClassifier(kind.Loose)(o)

		if o.classifier != kind.Loose {
			t.Error("expected loose classifier")
		}
	})

	t.Run("WithMaxDepth", func(t *testing.T) {
		o := &options{}
		WithMaxDepth(8)(o)

		if o.maxDepth != 8 {
			t.Errorf("expected max depth 8, got %d", o.maxDepth)
		}
	})

	t.Run("WithConstraints appends", func(t *testing.T) {
		o := &options{}
		WithConstraints(constKeyword{})(o)
		WithConstraints(failing{}, constKeyword{})(o)

		if len(o.constraints) != 3 {
			t.Fatalf("expected 3 constraints, got %d", len(o.constraints))
		}
		if o.constraints[1].Name() != "failing" {
			t.Errorf("expected constraints in order, got %s at index 1", o.constraints[1].Name())
		}
	})
}

func TestWithCatalog(t *testing.T) {
	catalog, err := wording.NewCatalog(map[schema.Atom]string{
		schema.AtomInteger: "ein Integer",
		schema.AtomNumber:  "eine Zahl",
		schema.AtomBoolean: "ein Boolean",
		schema.AtomObject:  "ein Objekt",
		schema.AtomArray:   "ein Array",
		schema.AtomString:  "ein String",
		schema.AtomEmail:   "eine E-Mail",
		schema.AtomNull:    "null",
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	v, err := New(WithCatalog(catalog))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	node := schema.OneOfTypes(schema.AtomNumber, schema.AtomString)
	res, err := v.Validate(context.Background(), true, &node)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected 1 record, got %d", len(res.Errors))
	}

	want := "Boolean value found, but eine Zahl or ein String is required"
	if res.Errors[0].Message != want {
		t.Errorf("message = %q, want %q", res.Errors[0].Message, want)
	}
}
