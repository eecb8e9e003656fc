package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"mathdemo/internal/handlers"
	"mathdemo/internal/observability"
	"mathdemo/internal/testutil"
)

func TestRouterOperationalEndpoints(t *testing.T) {
	router := NewRouter()

	health := testutil.Do(router, http.MethodGet, "/health", "")
	testutil.RequireStatus(t, health, http.StatusOK)
	if body := health.Body.String(); body != "ok" {
		t.Fatalf("expected /health body %q, got %q", "ok", body)
	}

	metrics := testutil.Do(router, http.MethodGet, "/metrics", "")
	testutil.RequireStatus(t, metrics, http.StatusOK)
	if !strings.Contains(metrics.Body.String(), "go_goroutines") {
		t.Fatal("expected Go collector output on /metrics")
	}
}

func TestRouterCalculatorSuccess(t *testing.T) {
	rr := testutil.Do(NewRouter(), http.MethodPost, "/calculator/add", `{"a":2,"b":3}`)
	testutil.RequireStatus(t, rr, http.StatusOK)

	requestID := rr.Header().Get(observability.RequestIDHeader)
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected UUID in %s, got %q: %v", observability.RequestIDHeader, requestID, err)
	}

	var payload map[string]any
	testutil.DecodeJSON(t, rr, &payload)

	if _, ok := payload["request_id"]; ok {
		t.Fatal("success body should carry the request id only in the header")
	}
	if got, ok := payload["result"].(float64); !ok || got != 5 {
		t.Fatalf("expected result 5, got %#v", payload["result"])
	}
	if payload["operation"] != "add" {
		t.Fatalf("expected operation %q, got %#v", "add", payload["operation"])
	}
}

func TestRouterErrorsAreJSON(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		status  int
		message string
	}{
		{"divide by zero", http.MethodPost, "/calculator/divide", `{"a":10,"b":0}`, http.StatusBadRequest, "invalid argument: division by zero is not allowed"},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound, "not found"},
		{"wrong method", http.MethodPut, "/health", "", http.StatusMethodNotAllowed, "method not allowed"},
	}

	router := NewRouter()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := testutil.Do(router, tc.method, tc.path, tc.body)
			testutil.RequireStatus(t, rr, tc.status)

			var body handlers.ErrorBody
			testutil.DecodeJSON(t, rr, &body)
			if body.Error != tc.message {
				t.Fatalf("expected error %q, got %q", tc.message, body.Error)
			}
			if body.RequestID != rr.Header().Get(observability.RequestIDHeader) {
				t.Fatalf("expected body request_id to match header, got %q", body.RequestID)
			}
		})
	}
}

func TestRouterCalculatorRejectsGet(t *testing.T) {
	rr := testutil.Do(NewRouter(), http.MethodGet, "/calculator/add", "")
	testutil.RequireStatus(t, rr, http.StatusMethodNotAllowed)
}
