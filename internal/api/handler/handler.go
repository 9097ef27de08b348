// Package handler provides HTTP handlers for all API endpoints. Handlers
// check the response cache, dispatch to the sport's upstream handler on a
// miss, and pass canonical JSON through with ETag and cache headers.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/scorepulse/internal/api/respond"
	"github.com/albapepper/scorepulse/internal/cache"
	"github.com/albapepper/scorepulse/internal/config"
	"github.com/albapepper/scorepulse/internal/provider/cfbd"
	"github.com/albapepper/scorepulse/internal/provider/espn"
	"github.com/albapepper/scorepulse/internal/sport"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	cache   *cache.Cache
	players *cache.PlayerCache
	espn    *espn.Client
	cfbd    *cfbd.Client // nil when no API key is configured
	cfg     *config.Config
	logger  *slog.Logger
}

// New creates a Handler with shared dependencies. cfbdClient may be nil.
func New(espnClient *espn.Client, cfbdClient *cfbd.Client, appCache *cache.Cache, playerCache *cache.PlayerCache, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cache:   appCache,
		players: playerCache,
		espn:    espnClient,
		cfbd:    cfbdClient,
		cfg:     cfg,
		logger:  logger,
	}
}

// sportHandler resolves the {sport} path param into an upstream handler.
// Fails before any network call for unknown sports.
func (h *Handler) sportHandler(key string) (*espn.Handler, error) {
	cfg, err := sport.Lookup(key)
	if err != nil {
		return nil, err
	}
	return espn.New(h.espn, cfg, h.logger), nil
}

// writeUpstreamError maps provider errors onto the API error taxonomy.
func (h *Handler) writeUpstreamError(w http.ResponseWriter, err error, notFoundCode, notFoundMsg string) {
	switch {
	case errors.Is(err, sport.ErrUnknown):
		respond.WriteError(w, http.StatusBadRequest, "UNKNOWN_SPORT", "Unknown sport: see / for supported sports")
	case espn.IsNotFound(err):
		respond.WriteError(w, http.StatusNotFound, notFoundCode, notFoundMsg)
	default:
		h.logger.Error("upstream request failed", "error", err)
		respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Upstream provider request failed")
	}
}

// writeCached serves a cache hit, honoring If-None-Match.
func writeCached(w http.ResponseWriter, r *http.Request, entry cache.Entry) {
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), entry.ETag) {
		respond.WriteNotModified(w, entry.ETag)
		return
	}
	respond.WriteJSON(w, entry.Data, entry.ETag, cache.TTL(entry.Live), true)
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and supported sports.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Scorepulse API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"sports":  sport.Keys(),
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
