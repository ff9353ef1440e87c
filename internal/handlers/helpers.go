package handlers

import (
	"encoding/json"
	"net/http"
)

// DetailResponse is the error body shape used for framework-level failures
// such as unknown routes.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body) // Client went away; nothing left to report
}

// respondDetail sends a {"detail": ...} error response
func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, DetailResponse{Detail: detail})
}

// NotFound answers requests for unknown paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondDetail(w, http.StatusNotFound, "Not Found")
}

// MethodNotAllowed answers requests whose path exists but whose method does not.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
