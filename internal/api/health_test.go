package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cinegraph/cinegraph/internal/api"
)

func TestLiveness_NoDatabase(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewHealthHandler(nil, testLogger(), "test")
	r.GET("/health", h.Liveness)

	w := doRequest(r, http.MethodGet, "/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Status   string `json:"status"`
		Version  string `json:"version"`
		Database string `json:"database"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}

	if resp.Version != "test" {
		t.Errorf("expected version test, got %q", resp.Version)
	}

	if resp.Database != "not_configured" {
		t.Errorf("expected database not_configured, got %q", resp.Database)
	}
}

func TestReadiness_NoDatabase(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewHealthHandler(nil, testLogger(), "test")
	r.GET("/ready", h.Readiness)

	w := doRequest(r, http.MethodGet, "/ready", "")

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if resp.Status != "not_ready" {
		t.Errorf("expected status not_ready, got %q", resp.Status)
	}

	if resp.Checks["database"] != "not_configured" {
		t.Errorf("expected database check not_configured, got %q", resp.Checks["database"])
	}
}
