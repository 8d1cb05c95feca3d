package handler

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func failureResponse(msg string) map[string]any {
	return map[string]any{"success": false, "error": msg}
}

func failureDetails(msg, details string) map[string]any {
	return map[string]any{"success": false, "error": msg, "details": details}
}
