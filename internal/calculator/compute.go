package calculator

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"mathdemo/internal/mathlib"
	"mathdemo/internal/observability"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Compute runs op on a and b inside a calculator.<op> span, recording
// operation metrics and a trace-correlated log entry. Errors from mathlib are
// returned unchanged so callers can match them with errors.Is.
func Compute(ctx context.Context, op Operation, a, b float64) (float64, error) {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", op),
		trace.WithAttributes(
			attribute.String("calculator.operation", string(op)),
			attribute.Float64("calculator.operand.a", a),
			attribute.Float64("calculator.operand.b", b),
		),
	)
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)
	attrs := metric.WithAttributes(attribute.String("operation", string(op)))

	start := time.Now()
	result, err := dispatch(op, a, b)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		errorCounter.Add(ctx, 1, attrs)

		logger.Debug("calculator operation failed",
			zap.String("operation", string(op)),
			zap.Float64("a", a),
			zap.Float64("b", b),
			zap.Error(err),
		)
		return 0, err
	}

	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Debug("calculator operation completed",
		zap.String("operation", string(op)),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.Float64("result", result),
		zap.Float64("duration_ms", elapsed),
	)

	return result, nil
}

func dispatch(op Operation, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return mathlib.Add(a, b), nil
	case OpSubtract:
		return mathlib.Subtract(a, b), nil
	case OpDivide:
		return mathlib.Divide(a, b)
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownOperation, op)
	}
}
