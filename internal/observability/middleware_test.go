package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"mathdemo/internal/testutil"
)

// captureRequestID returns a handler that stores the context request id.
func captureRequestID(dst *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*dst = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	known := uuid.NewString()

	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "generated when absent"},
		{name: "reused when UUID", incoming: known, reuse: true},
		{name: "replaced when not a UUID", incoming: "not-a-uuid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var fromCtx string
			req := httptest.NewRequest(http.MethodPost, "/calculator/add", nil)
			if tc.incoming != "" {
				req.Header.Set(RequestIDHeader, tc.incoming)
			}

			rr := testutil.Serve(RequestIDMiddleware(captureRequestID(&fromCtx)), req)

			header := rr.Header().Get(RequestIDHeader)
			if _, err := uuid.Parse(header); err != nil {
				t.Fatalf("expected UUID in %s, got %q: %v", RequestIDHeader, header, err)
			}
			if fromCtx != header {
				t.Fatalf("context request id %q does not match header %q", fromCtx, header)
			}
			if reused := header == tc.incoming; reused != tc.reuse {
				t.Fatalf("incoming %q: expected reuse=%t, got header %q", tc.incoming, tc.reuse, header)
			}
		})
	}
}

func TestShouldTraceRequest(t *testing.T) {
	for path, want := range map[string]bool{
		"/health":            false,
		"/metrics":           false,
		"/calculator/add":    true,
		"/calculator/divide": true,
	} {
		r := httptest.NewRequest(http.MethodGet, path, nil)
		if got := shouldTraceRequest(r); got != want {
			t.Errorf("shouldTraceRequest(%q) = %t, want %t", path, got, want)
		}
	}
}

func TestLoggingMiddlewareLogsStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = oldLogger })

	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	req := httptest.NewRequest(http.MethodPost, "/calculator/divide", nil)
	req = req.WithContext(ContextWithRequestID(req.Context(), "req-123"))
	testutil.Serve(h, req)

	entries := logs.FilterMessage("request completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 completion log, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	want := map[string]any{
		"method":     http.MethodPost,
		"path":       "/calculator/divide",
		"status":     int64(http.StatusBadRequest),
		"request_id": "req-123",
	}
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("field %s: expected %#v, got %#v", k, v, fields[k])
		}
	}
}

func TestLoggingMiddlewareDefaultsToOK(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = oldLogger })

	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	testutil.Do(h, http.MethodGet, "/health", "")

	if got := logs.All()[0].ContextMap()["status"]; got != int64(http.StatusOK) {
		t.Fatalf("expected status 200 when handler never calls WriteHeader, got %#v", got)
	}
}
