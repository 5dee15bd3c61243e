// Package handlers implements the HTTP handlers of the report server.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/your-org/swot-reporter/api"
	"github.com/your-org/swot-reporter/llm/workflow"
)

// ReportHandler handles report generation requests
type ReportHandler struct {
	generator *workflow.ReportGenerator
	useCache  bool
	logger    zerolog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(generator *workflow.ReportGenerator, useCache bool, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		generator: generator,
		useCache:  useCache,
		logger:    logger,
	}
}

// GenerateReport handles POST /reports
func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req api.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON request", err.Error())
		return
	}

	if req.Topic == "" {
		writeJSONError(w, http.StatusBadRequest, "MISSING_REQUIRED_FIELD", "topic field is required")
		return
	}

	useCache := h.useCache
	if req.UseCache != nil {
		useCache = *req.UseCache
	}

	report, err := h.generator.Run(r.Context(), req.Topic, workflow.Options{UseCache: useCache})
	if err != nil {
		if errors.Is(err, workflow.ErrNoSearchResults) {
			writeJSON(w, http.StatusOK, api.GenerateReportResponse{
				Success: false,
				Topic:   req.Topic,
				Error:   "Sorry, could not find any articles on the topic: " + req.Topic,
			})
			return
		}
		h.logger.Error().Err(err).Str("topic", req.Topic).Msg("report generation failed")
		writeJSONError(w, http.StatusBadGateway, "Report generation failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, api.GenerateReportResponse{
		Success: true,
		Topic:   report.Topic,
		Report:  report.Content,
		Cached:  report.Cached,
		Stats:   report.Stats,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, api.ErrorResponse{
		Error:   message,
		Details: details,
	})
}
