package handler

import (
	"context"
	"net/http"
	"time"

	"myvoice/internal/cache"
	"myvoice/internal/repository"
)

// healthPingTimeout bounds collaborator checks so /health stays fast even
// when a backend is wedged.
const healthPingTimeout = 2 * time.Second

// HealthHandler reports process liveness and collaborator reachability. The
// endpoint itself always answers 200; degraded backends show up in the
// body, not the status code.
type HealthHandler struct {
	store repository.ResponseStore
	cache cache.ResponseCache // may be nil
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store repository.ResponseStore, cache cache.ResponseCache) *HealthHandler {
	return &HealthHandler{store: store, cache: cache}
}

// Get handles GET /health
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	storage := "up"
	if err := h.store.Ping(ctx); err != nil {
		storage = "down"
	}

	cacheState := "disabled"
	if h.cache != nil {
		cacheState = "up"
		if err := h.cache.Ping(ctx); err != nil {
			cacheState = "down"
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"storage": storage,
		"cache":   cacheState,
	})
}
