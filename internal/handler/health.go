package handler

import (
	"net/http"

	"lipi/internal/httputil"
)

// HealthCheck is a simple health check endpoint
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "lipi-api",
	})
}
