package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rl1809/kata/internal/core/domain"
)

const (
	requestIDHeader = "X-Request-ID"
	maxBodyBytes    = 1 << 20
)

type HTTPHandler struct {
	ops    *Operations
	logger *zap.Logger
}

type HTTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Result  any    `json:"result"`
}

func NewHTTPHandler(ops *Operations, logger *zap.Logger) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{ops: ops, logger: logger}
}

// Routes registers /health and one POST endpoint per operation.
func (h *HTTPHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.HealthCheck)
	for _, rt := range h.ops.routes() {
		mux.HandleFunc("/api/"+rt.path, h.serve(rt))
	}
	return h.withRequestID(mux)
}

func (h *HTTPHandler) serve(rt route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, HTTPResponse{
				Success: false,
				Message: "invalid request body",
			})
			return
		}

		start := time.Now()
		result, err := rt.call(r.Context(), body)
		logger := h.logger.With(
			zap.String("request_id", w.Header().Get(requestIDHeader)),
			zap.String("operation", rt.path),
			zap.Duration("elapsed", time.Since(start)),
		)
		if err != nil {
			status, message := httpError(err)
			logger.Info("operation failed", zap.Int("status", status), zap.Error(err))
			writeJSON(w, status, HTTPResponse{
				Success: false,
				Message: message,
			})
			return
		}

		logger.Debug("operation done")
		writeJSON(w, http.StatusOK, HTTPResponse{
			Success: true,
			Result:  result,
		})
	}
}

func httpError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNegativeInput):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout, "request ended before the result was ready"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
