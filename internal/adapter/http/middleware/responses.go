package middleware

import (
	"encoding/json"
	"log"
	"net/http"
)

// writeJSONError sends a terminal {"error": ...} response for a gate
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]string{
		"error": message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode JSON error response: %v", err)
		http.Error(w, message, status)
	}
}
