package handler

import "net/http"

// Health handles GET /health. Liveness only: the service has no external
// state to probe, the AI backend is checked per request.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
