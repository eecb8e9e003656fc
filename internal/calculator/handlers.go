package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"mathdemo/internal/handlers"
	"mathdemo/internal/mathlib"
	"mathdemo/internal/observability"
)

var validate = validator.New()

// Handler returns the HTTP handler for op. The request body is a CalcRequest.
func Handler(op Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleBinaryOp(w, r, op)
	}
}

func handleBinaryOp(w http.ResponseWriter, r *http.Request, op Operation) {
	ctx := r.Context()
	span := trace.SpanFromContext(ctx)
	logger := observability.LoggerWithTrace(ctx)
	opName := string(op)

	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if err := validate.Struct(req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "operands a and b are required", err, http.StatusBadRequest, w)
		return
	}
	a, b := *req.A, *req.B

	result, err := Compute(ctx, op, a, b)
	if err != nil {
		writeComputeError(w, r, span, logger, op, err)
		return
	}

	// encoding/json cannot represent NaN or infinities.
	if math.IsNaN(result) || math.IsInf(result, 0) {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "result is not a finite number",
			fmt.Errorf("%g %s %g = %g", a, op.Symbol(), b, result), http.StatusUnprocessableEntity, w)
		return
	}

	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.Float64("result", result),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(CalcResponse{
		Operation: op,
		A:         a,
		B:         b,
		Result:    result,
	})
}

// writeComputeError reports a failure already recorded by Compute, so the
// error counter is not incremented again.
func writeComputeError(w http.ResponseWriter, r *http.Request, span trace.Span, logger *zap.Logger, op Operation, err error) {
	status, msg := http.StatusInternalServerError, "internal error"
	if errors.Is(err, mathlib.ErrInvalidArgument) {
		status, msg = http.StatusBadRequest, err.Error()
	}

	requestID := observability.RequestIDFromContext(r.Context())
	span.SetStatus(codes.Error, msg)

	logger.Error(msg,
		zap.String("operation", string(op)),
		zap.Error(err),
		zap.String("request_id", requestID),
		zap.Int("status", status),
	)

	handlers.WriteError(w, status, msg, requestID)
}
