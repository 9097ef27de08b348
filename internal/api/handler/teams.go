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

// teamSports reports whether a family has team pages at all.
func teamSports(f sport.Family) bool {
	switch f {
	case sport.FamilyGolf, sport.FamilyRacing, sport.FamilyMMA:
		return false
	}
	return true
}

// GetTeamDetail returns a team with roster, stats, form, schedule, and
// standings context.
// @Summary Team detail
// @Description Returns the assembled team view. The team lookup is required; roster, schedule, and standings sections degrade independently.
// @Tags teams
// @Produce json
// @Param sport path string true "Sport key"
// @Param teamID path string true "Team ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /{sport}/teams/{teamID} [get]
func (h *Handler) GetTeamDetail(w http.ResponseWriter, r *http.Request) {
	sb, err := h.sportHandler(chi.URLParam(r, "sport"))
	if err != nil {
		h.writeUpstreamError(w, err, "", "")
		return
	}
	if !teamSports(sb.Sport().Family) {
		respond.WriteError(w, http.StatusBadRequest, "UNSUPPORTED", "This sport has no team pages")
		return
	}
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Team ID is required")
		return
	}

	key := fmt.Sprintf("team:%s:%s", sb.Sport().Key, teamID)
	if entry, ok := h.cache.Get(key); ok {
		writeCached(w, r, entry)
		return
	}

	detail, err := sb.TeamDetail(r.Context(), teamID)
	if err != nil {
		h.writeUpstreamError(w, err, "TEAM_NOT_FOUND", "Team not found: "+teamID)
		return
	}

	data, merr := json.Marshal(detail)
	if merr != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_ERROR", "Failed to encode response")
		return
	}
	etag := h.cache.Set(key, data, false)
	respond.WriteJSON(w, data, etag, cache.TTL(false), false)
}
