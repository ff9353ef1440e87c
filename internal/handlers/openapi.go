package handlers

import (
	"net/http"

	"github.com/benvon/starter-api/internal/config"
	"github.com/gorilla/mux"
	"gopkg.in/yaml.v3"
)

// OpenAPIDocument is the subset of OpenAPI 3.1 the service describes itself with.
type OpenAPIDocument struct {
	OpenAPI string                     `json:"openapi" yaml:"openapi"`
	Info    OpenAPIInfo                `json:"info" yaml:"info"`
	Paths   map[string]OpenAPIPathItem `json:"paths" yaml:"paths"`
}

// OpenAPIInfo is the document's info object.
type OpenAPIInfo struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version" yaml:"version"`
}

// OpenAPIPathItem lists the operations on one path.
type OpenAPIPathItem struct {
	Get *OpenAPIOperation `json:"get,omitempty" yaml:"get,omitempty"`
}

// OpenAPIOperation describes a single operation.
type OpenAPIOperation struct {
	Summary     string                     `json:"summary" yaml:"summary"`
	OperationID string                     `json:"operationId" yaml:"operationId"`
	Responses   map[string]OpenAPIResponse `json:"responses" yaml:"responses"`
}

// OpenAPIResponse describes one response of an operation.
type OpenAPIResponse struct {
	Description string                      `json:"description" yaml:"description"`
	Content     map[string]OpenAPIMediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// OpenAPIMediaType carries the schema for a content type.
type OpenAPIMediaType struct {
	Schema map[string]any `json:"schema" yaml:"schema"`
}

// OpenAPIHandler serves the generated OpenAPI document
type OpenAPIHandler struct {
	doc OpenAPIDocument
}

// NewOpenAPIHandler describes the service's routes using the given metadata.
func NewOpenAPIHandler(info config.AppInfo) *OpenAPIHandler {
	return &OpenAPIHandler{doc: buildDocument(info)}
}

// RegisterRoutes registers OpenAPI routes
func (h *OpenAPIHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/openapi.json", h.ServeJSON).Methods(http.MethodGet)
	r.HandleFunc("/openapi.yaml", h.ServeYAML).Methods(http.MethodGet)
}

// Document returns the generated document.
func (h *OpenAPIHandler) Document() OpenAPIDocument {
	return h.doc
}

// ServeJSON serves the OpenAPI document in JSON format
func (h *OpenAPIHandler) ServeJSON(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.doc)
}

// ServeYAML serves the OpenAPI document in YAML format
func (h *OpenAPIHandler) ServeYAML(w http.ResponseWriter, r *http.Request) {
	data, err := yaml.Marshal(h.doc)
	if err != nil {
		respondDetail(w, http.StatusInternalServerError, "Failed to encode OpenAPI document")
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func buildDocument(info config.AppInfo) OpenAPIDocument {
	return OpenAPIDocument{
		OpenAPI: "3.1.0",
		Info: OpenAPIInfo{
			Title:       info.Title,
			Description: info.Description,
			Version:     info.Version,
		},
		Paths: map[string]OpenAPIPathItem{
			"/": {
				Get: jsonOperation("Root", "root", map[string]any{
					"type": "object",
					"properties": map[string]any{
						"message": map[string]any{"type": "string", "const": GreetingMessage},
					},
					"required": []string{"message"},
				}),
			},
			"/health": {
				Get: jsonOperation("Health", "health", map[string]any{
					"type": "object",
					"properties": map[string]any{
						"status": map[string]any{"type": "string", "const": "ok"},
					},
					"required": []string{"status"},
				}),
			},
		},
	}
}

func jsonOperation(summary, operationID string, schema map[string]any) *OpenAPIOperation {
	return &OpenAPIOperation{
		Summary:     summary,
		OperationID: operationID,
		Responses: map[string]OpenAPIResponse{
			"200": {
				Description: "Successful Response",
				Content: map[string]OpenAPIMediaType{
					"application/json": {Schema: schema},
				},
			},
		},
	}
}
