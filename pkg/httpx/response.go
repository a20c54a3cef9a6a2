package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the single-field error body every failure response in the
// API uses: {"error": "<message>"}.
func WriteError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, map[string]string{"error": message})
}

// WriteSuccess writes {"success": true}, the body used by mutating endpoints
// that have nothing else to report.
func WriteSuccess(w http.ResponseWriter, code int) {
	WriteJSON(w, code, map[string]bool{"success": true})
}

// NoCache marks a response as uncacheable. Required for anything carrying
// session material.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
