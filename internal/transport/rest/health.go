package rest

import (
	"encoding/json"
	"net/http"
	"time"
)

// recipeStatus reports whether the optional recipe feature has a credential.
type recipeStatus interface {
	Enabled() bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	recipes recipeStatus
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(recipes recipeStatus, version string) *HealthHandler {
	return &HealthHandler{recipes: recipes, version: version}
}

// HealthResponse is the JSON response for /live and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports the build version and which features are usable.
// A missing recipe credential degrades one feature and still answers 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{
		"dictionary": {Status: "ok"},
		"formula":    {Status: "ok"},
	}

	overall := "ok"
	if h.recipes.Enabled() {
		components["recipe"] = CompStatus{Status: "ok"}
	} else {
		components["recipe"] = CompStatus{Status: "disabled", Reason: "no recipe API key configured"}
		overall = "degraded"
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
