package handlers

import (
	"net/http"

	"logistik-dashboard/internal/platform/logger"
)

// Health provides a minimal liveness check endpoint. The backend is not contacted.
func Health(log logger.ILogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(log, w, r, http.StatusOK, map[string]string{"status": "ok"})
	}
}
