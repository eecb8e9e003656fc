package calculator

import (
	"context"
	"os"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var (
	spanExporter = tracetest.NewInMemoryExporter()
	metricReader = sdkmetric.NewManualReader()
)

// TestMain installs in-memory OTel providers once; the calculator tracer and
// meter obtained from the globals delegate to them.
func TestMain(m *testing.M) {
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(spanExporter)))
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(metricReader)))

	if err := InitMetrics(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

// counterValue returns the cumulative value of an int64 sum for operation.
func counterValue(t *testing.T, name string, op Operation) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := metricReader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collecting metrics: %v", err)
	}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("metric %s: unexpected data type %T", name, m.Data)
			}
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value("operation"); ok && v.AsString() == string(op) {
					return dp.Value
				}
			}
		}
	}
	return 0
}
