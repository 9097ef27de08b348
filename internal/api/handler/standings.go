package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/scorepulse/internal/api/respond"
	"github.com/albapepper/scorepulse/internal/cache"
)

// GetStandings returns the league table grouped by division/conference.
// @Summary Standings
// @Description Returns standings rows in upstream order within each group. Optionally filtered by conference name.
// @Tags standings
// @Produce json
// @Param sport path string true "Sport key"
// @Param conference query string false "Conference/group name filter"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /{sport}/standings [get]
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	sb, err := h.sportHandler(chi.URLParam(r, "sport"))
	if err != nil {
		h.writeUpstreamError(w, err, "", "")
		return
	}
	conference := r.URL.Query().Get("conference")

	key := fmt.Sprintf("standings:%s:%s", sb.Sport().Key, conference)
	if entry, ok := h.cache.Get(key); ok {
		writeCached(w, r, entry)
		return
	}

	rows, err := sb.Standings(r.Context(), conference)
	if err != nil {
		h.writeUpstreamError(w, err, "NOT_FOUND", "Standings not available")
		return
	}

	data, merr := json.Marshal(map[string]interface{}{
		"sport":     sb.Sport().Key,
		"standings": rows,
	})
	if merr != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_ERROR", "Failed to encode response")
		return
	}
	etag := h.cache.Set(key, data, false)
	respond.WriteJSON(w, data, etag, cache.TTL(false), false)
}
