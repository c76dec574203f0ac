package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// handleHealth reports liveness.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleChat accepts the widget's wire format and returns a demo reply.
func handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := makeReply(payload.Message)
	if err != nil {
		log.Printf("[chat] failed to build reply: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to process request")
		return
	}

	respondJSON(w, http.StatusOK, chatResponse{
		Response:  reply,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// makeReply builds the echo-style demo reply.
func makeReply(message string) (string, error) {
	return fmt.Sprintf(
		"You said: **%s**\n\nThis is a demo reply from the chatkit sample backend. "+
			"Point the widget at your own endpoint to get real answers.",
		strings.TrimSpace(message),
	), nil
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
