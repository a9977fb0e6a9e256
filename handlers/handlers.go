// Package handlers wires the HTTP surface: the months read endpoint, the
// generation proxy and a health check, all behind permissive CORS.
package handlers

import (
	"encoding/json"
	"net/http"

	"math-calendar-api/db"
	"math-calendar-api/models"
)

// NewRouter builds the full route table.
func NewRouter(database *db.DB, generator TextGenerator) http.Handler {
	content := NewContentHandlers(database)
	generate := NewGenerateHandlers(generator)

	mux := http.NewServeMux()

	mux.HandleFunc("/health", healthCheck)
	mux.HandleFunc("/api/months", content.HandleMonths)
	mux.HandleFunc("/api/gemini", generate.HandleGenerate)
	mux.HandleFunc("/api/gemini/explain", generate.HandleGenerate) // backward compatible

	return corsMiddleware(mux)
}

// corsMiddleware answers preflight and lets any origin through.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
