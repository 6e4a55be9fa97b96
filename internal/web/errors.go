package web

import (
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"
)

// feedWarning is the user-facing message for any feed failure: transport
// error, bad status, or malformed CSV. The technical detail stays in the
// server log.
const feedWarning = "No data available right now. The catalog export could not be loaded; try Refresh in a moment."

// errorResponse is the JSON error envelope for API routes.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message}); err != nil {
		slog.Error("json encode error", "error", err)
	}
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
