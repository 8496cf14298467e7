package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"id_validator/internal/domain"
	"id_validator/internal/processor"
	"id_validator/internal/report"
	"id_validator/internal/repository"
	"id_validator/pkg/metrics"
)

type APIHandler struct {
	pipeline       *processor.ValidationPipeline
	metrics        *metrics.MetricsCollector
	exporters      map[string]report.Exporter
	logger         *slog.Logger
	requestTimeout time.Duration
}

func NewAPIHandler(
	pipeline *processor.ValidationPipeline,
	metricsCollector *metrics.MetricsCollector,
	exporters []report.Exporter,
	logger *slog.Logger,
) *APIHandler {
	if logger == nil {
		logger = slog.Default()
	}

	byFormat := make(map[string]report.Exporter, len(exporters))
	for _, exporter := range exporters {
		byFormat[exporter.Format()] = exporter
	}

	return &APIHandler{
		pipeline:       pipeline,
		metrics:        metricsCollector,
		exporters:      byFormat,
		logger:         logger,
		requestTimeout: 30 * time.Second,
	}
}

type ValidateRequest struct {
	Input string   `json:"input,omitempty"`
	IDs   []string `json:"ids,omitempty"`
}

type ValidateResponse struct {
	Results []domain.ValidationResult `json:"results"`
	Summary report.Summary            `json:"summary"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func (h *APIHandler) ValidateHandler(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "Invalid request body", http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	tokens := req.IDs
	if len(tokens) == 0 {
		tokens = processor.Tokenize(req.Input)
	}
	if len(tokens) == 0 {
		h.sendError(w, "No identifiers to validate", http.StatusBadRequest, "EMPTY_INPUT")
		return
	}

	results, err := h.pipeline.ProcessBatch(ctx, tokens)
	if err != nil {
		h.logger.Error("Batch processing failed", slog.String("error", err.Error()))
		h.sendError(w, fmt.Sprintf("Validation failed: %v", err), http.StatusInternalServerError, "PROCESSING_ERROR")
		return
	}

	h.metrics.RecordBatch(time.Since(startTime))
	for _, result := range results {
		flags := make([]string, 0, len(result.Flags))
		for _, flag := range result.Flags {
			flags = append(flags, string(flag))
		}
		h.metrics.RecordValidation(string(result.Type), result.Valid, flags)
	}

	summary := report.Build(results).Summary
	h.sendJSON(w, ValidateResponse{Results: results, Summary: summary}, http.StatusOK)

	h.logger.Info("Batch validated",
		slog.Int("count", summary.Total),
		slog.Int("valid", summary.Valid),
		slog.Int("flagged", summary.Flagged))
}

func (h *APIHandler) GetAttemptsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("id") != "" {
		h.getAttempt(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.sendError(w, "Invalid limit", http.StatusBadRequest, "INVALID_LIMIT")
			return
		}
		limit = parsed
	}

	attempts, err := h.pipeline.GetRecentAttempts(ctx, limit)
	if err != nil {
		h.sendError(w, "Failed to get attempts", http.StatusInternalServerError, "SERVER_ERROR")
		return
	}

	h.sendJSON(w, attempts, http.StatusOK)
}

func (h *APIHandler) getAttempt(w http.ResponseWriter, r *http.Request) {
	attemptID := r.URL.Query().Get("id")

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	attempt, err := h.pipeline.GetAttempt(ctx, attemptID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.sendError(w, "Attempt not found", http.StatusNotFound, "NOT_FOUND")
		} else {
			h.sendError(w, "Failed to get attempt", http.StatusInternalServerError, "SERVER_ERROR")
		}
		return
	}

	h.sendJSON(w, attempt, http.StatusOK)
}

func (h *APIHandler) ReportHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "table"
	}

	exporter, ok := h.exporters[format]
	if !ok {
		h.sendError(w, fmt.Sprintf("Unknown report format: %s", format), http.StatusBadRequest, "UNKNOWN_FORMAT")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	attempts, err := h.pipeline.GetRecentAttempts(ctx, 0)
	if err != nil {
		h.sendError(w, "Failed to get attempts", http.StatusInternalServerError, "SERVER_ERROR")
		return
	}

	results := make([]domain.ValidationResult, 0, len(attempts))
	for _, attempt := range attempts {
		results = append(results, attempt.Result())
	}

	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=validation_report.%s", exporter.Format()))

	if err := exporter.Export(w, report.Build(results)); err != nil {
		h.logger.Error("Report export failed",
			slog.String("format", format),
			slog.String("error", err.Error()))
	}
}

func (h *APIHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
	}
	h.sendJSON(w, response, http.StatusOK)
}

func (h *APIHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", slog.String("error", err.Error()))
	}
}

func (h *APIHandler) sendError(w http.ResponseWriter, message string, statusCode int, code string) {
	errorResponse := ErrorResponse{
		Error: message,
		Code:  code,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse)

	h.logger.Warn("API error response",
		slog.String("message", message),
		slog.String("code", code),
		slog.Int("status", statusCode))
}

func (h *APIHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/validate", h.ValidateHandler)
	mux.HandleFunc("GET /api/v1/attempts", h.GetAttemptsHandler)
	mux.HandleFunc("GET /api/v1/report", h.ReportHandler)
	mux.HandleFunc("GET /api/health", h.HealthCheckHandler)
}
