package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/graphdb"
)

// healthCheckTimeout bounds the store ping inside health endpoints.
const healthCheckTimeout = 2 * time.Second

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db        *graphdb.DB
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler with the given dependencies.
func NewHealthHandler(db *graphdb.DB, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the health/liveness endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// readinessResponse is the JSON payload returned by the readiness endpoint.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Liveness handles GET /health. It always returns 200 and reports store
// connectivity in the payload.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Database:      "connected",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	// Best-effort store ping (non-fatal for liveness).
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := h.db.HealthCheck(ctx); err != nil {
			resp.Database = "disconnected"
		}
	} else {
		resp.Database = "not_configured"
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /ready. It returns 503 until the graph store is
// reachable.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]string{"database": "ok"}
	status := "ready"
	code := http.StatusOK

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if h.db == nil {
		checks["database"] = "not_configured"
		status = "not_ready"
		code = http.StatusServiceUnavailable
	} else if err := h.db.HealthCheck(ctx); err != nil {
		h.log.WithError(err).Warn("readiness check failed")
		checks["database"] = "unreachable"
		status = "not_ready"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, readinessResponse{Status: status, Checks: checks})
}
