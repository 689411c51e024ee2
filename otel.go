package schemaguard

import (
	"context"
	"fmt"

	"github.com/zero-day-ai/schemaguard/schemaerr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/zero-day-ai/schemaguard"

// otelMetrics holds the OpenTelemetry metric instruments of a Validator.
// They are created once in New and reused for all validations.
type otelMetrics struct {
	// validations increments once per top-level validation, tagged with the outcome
	validations metric.Int64Counter

	// typeViolations counts records produced by the type constraint
	typeViolations metric.Int64Counter
}

func newOTelMetrics(mp metric.MeterProvider) (*otelMetrics, error) {
	meter := mp.Meter(instrumentationName)

	m := &otelMetrics{}
	var err error

	m.validations, err = meter.Int64Counter(
		"schemaguard.validations",
		metric.WithDescription("Number of top-level validations performed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create validations counter: %w", err)
	}

	m.typeViolations, err = meter.Int64Counter(
		"schemaguard.type_violations",
		metric.WithDescription("Number of values rejected by the type constraint"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create type violations counter: %w", err)
	}

	return m, nil
}

// record is a no-op on a nil receiver.
func (m *otelMetrics) record(ctx context.Context, records []schemaerr.Record, err error) {
	if m == nil {
		return
	}

	outcome := "valid"
	switch {
	case err != nil:
		outcome = "fault"
	case len(records) > 0:
		outcome = "invalid"
	}
	m.validations.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	var violations int64
	for _, r := range records {
		if r.Code == schemaerr.CodeType {
			violations++
		}
	}
	if violations > 0 {
		m.typeViolations.Add(ctx, violations)
	}
}
