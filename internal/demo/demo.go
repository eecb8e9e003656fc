// Package demo runs the scripted sequence of calculations that `mathdemo demo`
// logs.
package demo

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"mathdemo/internal/calculator"
	"mathdemo/internal/mathlib"
	"mathdemo/internal/observability"
)

var tracer = otel.Tracer("demo")

// Step is one calculation in a script.
type Step struct {
	Op   calculator.Operation
	A, B float64
}

func (s Step) String() string {
	return fmt.Sprintf("%g %s %g", s.A, s.Op.Symbol(), s.B)
}

// DefaultScript is the sequence run by `mathdemo demo`. The last step divides
// by zero to show the error being reported without stopping the run.
var DefaultScript = []Step{
	{Op: calculator.OpAdd, A: 5, B: 3},
	{Op: calculator.OpSubtract, A: 10, B: 4},
	{Op: calculator.OpDivide, A: 15, B: 3},
	{Op: calculator.OpDivide, A: 10, B: 0},
}

// Result is the outcome of one Step.
type Result struct {
	Step  Step
	Value float64
	Err   error
}

// Run executes script in order, logging each result. Steps failing with
// mathlib.ErrInvalidArgument are logged and recorded in the returned results;
// any other error stops the run and is returned.
func Run(ctx context.Context, script []Step) ([]Result, error) {
	ctx, span := tracer.Start(ctx, "demo.run")
	defer span.End()
	span.SetAttributes(attribute.Int("demo.steps", len(script)))

	logger := observability.LoggerWithTrace(ctx)
	logger.Info("starting math operations demo")

	results := make([]Result, 0, len(script))
	for i, step := range script {
		value, err := calculator.Compute(ctx, step.Op, step.A, step.B)

		switch {
		case errors.Is(err, mathlib.ErrInvalidArgument):
			logger.Error("error occurred",
				zap.Int("step", i),
				zap.String("expression", step.String()),
				zap.Error(err),
			)
		case err != nil:
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Error("unexpected error", zap.Int("step", i), zap.Error(err))
			return results, fmt.Errorf("step %d (%s): %w", i, step, err)
		default:
			logger.Info(fmt.Sprintf("%s = %g", step, value),
				zap.String("operation", string(step.Op)),
				zap.Float64("a", step.A),
				zap.Float64("b", step.B),
				zap.Float64("result", value),
			)
		}

		results = append(results, Result{Step: step, Value: value, Err: err})
	}

	logger.Info("demo completed successfully")
	span.SetStatus(codes.Ok, "")
	return results, nil
}
