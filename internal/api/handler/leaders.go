package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/scorepulse/internal/api/respond"
	"github.com/albapepper/scorepulse/internal/cache"
	"github.com/albapepper/scorepulse/internal/sport"
)

// GetLeaders returns stat leaders grouped by category.
// @Summary Stat leaders
// @Description Returns stat-leader lists with plain integer ranks, optionally filtered by category.
// @Tags leaders
// @Produce json
// @Param sport path string true "Sport key"
// @Param category query string false "Stat category filter"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /{sport}/leaders [get]
func (h *Handler) GetLeaders(w http.ResponseWriter, r *http.Request) {
	sb, err := h.sportHandler(chi.URLParam(r, "sport"))
	if err != nil {
		h.writeUpstreamError(w, err, "", "")
		return
	}
	category := r.URL.Query().Get("category")

	key := fmt.Sprintf("leaders:%s:%s", sb.Sport().Key, category)
	if entry, ok := h.cache.Get(key); ok {
		writeCached(w, r, entry)
		return
	}

	categories, err := sb.Leaders(r.Context(), category)
	if err != nil {
		h.writeUpstreamError(w, err, "NOT_FOUND", "Leaders not available")
		return
	}

	data, merr := json.Marshal(map[string]interface{}{
		"sport":      sb.Sport().Key,
		"categories": categories,
	})
	if merr != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_ERROR", "Failed to encode response")
		return
	}
	etag := h.cache.Set(key, data, false)
	respond.WriteJSON(w, data, etag, cache.TTL(false), false)
}

// GetLeaderboard returns the current golf tournament leaderboard.
// @Summary Tournament leaderboard
// @Description Returns the golf leaderboard with upstream position strings ("T2", "CUT") and derived thru values. Live tier cache.
// @Tags leaders
// @Produce json
// @Param sport path string true "Sport key (golf)"
// @Param tour query string false "Tour (pga, lpga, eur)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /{sport}/leaderboard [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	sb, err := h.sportHandler(chi.URLParam(r, "sport"))
	if err != nil {
		h.writeUpstreamError(w, err, "", "")
		return
	}
	if sb.Sport().Family != sport.FamilyGolf {
		respond.WriteError(w, http.StatusBadRequest, "UNSUPPORTED", "Tournament leaderboards are golf only")
		return
	}
	tour := r.URL.Query().Get("tour")

	// A leaderboard is live by nature: short tier.
	key := fmt.Sprintf("leaderboard:%s:%s", sb.Sport().Key, tour)
	if entry, ok := h.cache.Get(key); ok {
		writeCached(w, r, entry)
		return
	}

	entries, err := sb.Leaderboard(r.Context(), tour, "")
	if err != nil {
		h.writeUpstreamError(w, err, "NOT_FOUND", "Leaderboard not available")
		return
	}

	data, merr := json.Marshal(map[string]interface{}{
		"sport":       sb.Sport().Key,
		"tour":        tour,
		"leaderboard": entries,
	})
	if merr != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_ERROR", "Failed to encode response")
		return
	}
	etag := h.cache.Set(key, data, true)
	respond.WriteJSON(w, data, etag, cache.TTL(true), false)
}
