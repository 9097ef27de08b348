package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/scorepulse/internal/api/respond"
	"github.com/albapepper/scorepulse/internal/cache"
)

// How long a background refresh may run after the original request has
// already been answered with the stale copy.
const refreshTimeout = 30 * time.Second

// GetPlayerDetail returns the assembled player profile.
// @Summary Player detail
// @Description Returns the canonical player assembled from bio + stats + sport-specific supplements. Stale cached profiles are served immediately while a background refresh re-runs the pipeline.
// @Tags players
// @Produce json
// @Param sport path string true "Sport key"
// @Param playerID path string true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /{sport}/players/{playerID} [get]
func (h *Handler) GetPlayerDetail(w http.ResponseWriter, r *http.Request) {
	sb, err := h.sportHandler(chi.URLParam(r, "sport"))
	if err != nil {
		h.writeUpstreamError(w, err, "", "")
		return
	}
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Player ID is required")
		return
	}
	sportKey := sb.Sport().Key

	if player, fresh, ok := h.players.Get(sportKey, playerID); ok {
		if !fresh {
			// Serve the stale copy without a user-facing wait; the next
			// request gets the refreshed profile.
			go h.refreshPlayer(sportKey, playerID)
		}
		data, merr := json.Marshal(player)
		if merr != nil {
			respond.WriteError(w, http.StatusInternalServerError, "ENCODE_ERROR", "Failed to encode response")
			return
		}
		respond.WriteSWR(w, data, cache.ComputeETag(data), true)
		return
	}

	// First sight of this player: the full fan-out runs synchronously.
	player, err := sb.PlayerDetail(r.Context(), playerID)
	if err != nil {
		h.writeUpstreamError(w, err, "PLAYER_NOT_FOUND", "Player not found: "+playerID)
		return
	}
	h.players.Put(sportKey, playerID, player)

	data, merr := json.Marshal(player)
	if merr != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_ERROR", "Failed to encode response")
		return
	}
	respond.WriteSWR(w, data, cache.ComputeETag(data), false)
}

// refreshPlayer re-runs the fetch-and-normalize pipeline in the
// background and overwrites the cache. Failures keep the stale copy.
func (h *Handler) refreshPlayer(sportKey, playerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	sb, err := h.sportHandler(sportKey)
	if err != nil {
		return
	}
	player, err := sb.PlayerDetail(ctx, playerID)
	if err != nil {
		h.logger.Warn("background player refresh failed", "sport", sportKey, "player_id", playerID, "error", err)
		return
	}
	h.players.Put(sportKey, playerID, player)
}
