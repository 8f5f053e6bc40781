package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"storekeep/internal/infrastructure/storage/postgres"
)

// Database is what the probes need from the pool. *postgres.Pool satisfies it.
type Database interface {
	Ping(ctx context.Context) error
	Stats() postgres.PoolStats
}

// CounterSnapshotter reads the current counter values without advancing them.
type CounterSnapshotter interface {
	Snapshot(ctx context.Context) (map[string]int64, error)
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	db       Database
	counters CounterSnapshotter
	version  string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db Database, counters CounterSnapshotter, version string) *HealthHandler {
	return &HealthHandler{db: db, counters: counters, version: version}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe (is the service ready to accept traffic?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"checks": map[string]string{
				"database": "unhealthy: " + err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"database": "healthy",
		},
	})
}

// Info returns application information: pool usage and counter values.
// Counters that were never seeded are reported as -1.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	body := gin.H{
		"app":      "storekeep",
		"version":  h.version,
		"database": h.db.Stats(),
	}

	counters, err := h.counters.Snapshot(c.Request.Context())
	if err != nil {
		body["counters"] = gin.H{"error": err.Error()}
	} else {
		body["counters"] = counters
	}

	c.JSON(http.StatusOK, body)
}
