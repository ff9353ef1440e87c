package handlers

import (
	"net/http"
)

// GreetingMessage is returned by the root endpoint.
const GreetingMessage = "Hello from FastAPI"

// MessageResponse is the root endpoint body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// Root handles GET /
func Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, MessageResponse{Message: GreetingMessage})
}

// Health handles GET /health. It reports process liveness only and
// probes nothing.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
