package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "calculator"

// Instruments stay no-op until InitMetrics replaces them, so Compute is safe
// to call from tests and tools that never configure metrics.
var (
	opsCounter   metric.Int64Counter     = noop.Int64Counter{}
	opsHistogram metric.Float64Histogram = noop.Float64Histogram{}
	errorCounter metric.Int64Counter     = noop.Int64Counter{}
	resultGauge  metric.Float64Gauge     = noop.Float64Gauge{}
)

// durationBuckets are in milliseconds. A single float operation lands in the
// first bucket; the upper ones catch scheduler noise.
var durationBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 1, 10}

// InitMetrics (re)creates the calculator instruments from the global meter
// provider. Call it after observability.InitTelemetry.
func InitMetrics() error {
	meter := otel.Meter(meterName)

	ops, err := meter.Int64Counter("calculator.operations.total",
		metric.WithDescription("Calculator operations that produced a result"),
		metric.WithUnit("{operation}"))
	if err != nil {
		return fmt.Errorf("creating operations counter: %w", err)
	}

	duration, err := meter.Float64Histogram("calculator.operation.duration",
		metric.WithDescription("Time spent inside the arithmetic library"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(durationBuckets...))
	if err != nil {
		return fmt.Errorf("creating duration histogram: %w", err)
	}

	errs, err := meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Failed calculator operations and rejected requests"),
		metric.WithUnit("{error}"))
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	last, err := meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("Result of the most recent successful operation"),
		metric.WithUnit("1"))
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	opsCounter, opsHistogram, errorCounter, resultGauge = ops, duration, errs, last
	return nil
}
