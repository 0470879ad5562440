package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"logistik-dashboard/internal/api/views"
	"logistik-dashboard/internal/platform/logger"
	"logistik-dashboard/internal/platform/obs"
)

func writeJSON(log logger.ILogger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode failed",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.String("req_id", obs.RequestID(r.Context())),
			logger.Error(err),
		)
	}
}

func writeError(log logger.ILogger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(log, w, r, status, map[string]string{"error": msg})
}

// writePage renders into a buffer first; a template error becomes a plain 500.
func writePage(log logger.ILogger, v *views.Renderer, w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := v.Render(&buf, page, data); err != nil {
		log.Error("render failed",
			logger.String("page", page),
			logger.String("req_id", obs.RequestID(r.Context())),
			logger.Error(err),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
