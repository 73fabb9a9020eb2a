package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// Check is a named dependency probe.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []Check
	version string
}

// NewHealthHandler creates a HealthHandler probing the given dependencies.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 if every dependency answers, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.probe(r.Context())

	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-dependency latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.probe(r.Context())

	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.checks))
	ok := true

	for _, c := range h.checks {
		start := time.Now()
		if err := c.Ping(ctx); err != nil {
			components[c.Name] = CompStatus{Status: "down"}
			ok = false
			continue
		}
		components[c.Name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	return components, ok
}
