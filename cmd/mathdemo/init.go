package main

import (
	"context"
	"errors"

	"mathdemo/internal/calculator"
	"mathdemo/internal/config"
	"mathdemo/internal/observability"
)

// initObservability configures logging, starts telemetry export when enabled
// and registers the calculator's metric instruments. The returned function
// flushes everything in reverse order.
func initObservability(ctx context.Context, cfg *config.Config) (observability.ShutdownFunc, error) {
	if err := observability.InitLogger(cfg.Log); err != nil {
		return nil, err
	}

	shutdown, err := observability.InitTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return nil, err
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}

	return func(ctx context.Context) error {
		err := shutdown(ctx)
		observability.SyncLogger()
		return err
	}, nil
}
