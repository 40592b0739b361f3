package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/barakhava1/CashoryLoanTracker/pkg/response"
)

// HealthHandler reports on the app's two external collaborators: the settings
// database and the summary cache.
type HealthHandler struct {
	settingsDB *sqlx.DB
	cache      *redis.Client
}

func NewHealthHandler(settingsDB *sqlx.DB, cache *redis.Client) *HealthHandler {
	return &HealthHandler{
		settingsDB: settingsDB,
		cache:      cache,
	}
}

type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Health performs a basic liveness check
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	response.Success(w, status)
}

// Ready reports whether the settings store and summary cache are reachable.
// The cache is best-effort at runtime, but a dead cache at readiness time
// usually means misconfiguration, so it fails the check.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.settingsDB.PingContext(ctx); err != nil {
		status.Status = "error"
		status.Checks["settings_store"] = "unreachable: " + err.Error()
	} else {
		status.Checks["settings_store"] = "ok"
	}

	if err := h.cache.Ping(ctx).Err(); err != nil {
		status.Status = "error"
		status.Checks["summary_cache"] = "unreachable: " + err.Error()
	} else {
		status.Checks["summary_cache"] = "ok"
	}

	if status.Status == "error" {
		response.Error(w, http.StatusServiceUnavailable, "service not ready", nil)
		return
	}

	response.Success(w, status)
}
