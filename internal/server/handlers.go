package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"salesql/api/models"
	"salesql/apimodels"
	"salesql/internal/analyzer"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalysisRequest(w, r)
	if !ok {
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		// Pipeline failures travel in-band as a structured payload, not
		// as an HTTP error.
		slog.Error("analysis request failed", "error", err)
		result = analyzer.Failure(err)
	}

	writeJSON(w, http.StatusOK, result)
}

// handleAnalyzeStream answers the same request over Server-Sent Events: a
// processing event first, then a complete (or error) event with the payload.
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalysisRequest(w, r)
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	writeEvent(w, flusher, apimodels.StreamEvent{
		Status:  "processing",
		Message: "Analyzing your query...",
	})

	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		slog.Error("analysis request failed", "error", err)
		writeEvent(w, flusher, apimodels.StreamEvent{
			Status: "error",
			Error:  err.Error(),
			Result: analyzer.Failure(err),
		})
		return
	}

	writeEvent(w, flusher, apimodels.StreamEvent{
		Status: "complete",
		Result: result,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		slog.Error("health check: database unreachable", "error", err)
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "degraded",
			"error":  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "healthy",
		"database": stats,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleDatasets reports per-table availability in the shape the chart
// frontend expects.
func (s *Server) handleDatasets(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	datasets := make(map[string]any, len(stats.Tables))
	names := make([]string, 0, len(stats.Tables))
	for table, ts := range stats.Tables {
		datasets[table] = map[string]any{
			"loaded_rows": ts.RowCount,
			"total_rows":  ts.RowCount,
		}
		names = append(names, table)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"loaded":                 true,
		"datasets":               datasets,
		"available_for_analysis": names,
	})
}

func (s *Server) decodeAnalysisRequest(w http.ResponseWriter, r *http.Request) (models.AnalysisRequest, bool) {
	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return req, false
	}
	defer r.Body.Close()

	if req.Query == "" {
		http.Error(w, "Query cannot be empty", http.StatusBadRequest)
		return req, false
	}

	slog.Debug("received analysis request", "query", req.Query, "session", req.SessionID)
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, event apimodels.StreamEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to encode stream event", "error", err)
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}
