package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/scorepulse/internal/api/respond"
	"github.com/albapepper/scorepulse/internal/cache"
	"github.com/albapepper/scorepulse/internal/provider/cfbd"
	"github.com/albapepper/scorepulse/internal/sport"
)

// GetGames returns games for a date (today/live when omitted).
// @Summary Games for date
// @Description Returns the canonical scoreboard for a sport. Omitting date selects today's (possibly live) games and the short cache tier. Golf returns a tournament leaderboard, MMA fight cards, F1 race results.
// @Tags games
// @Produce json
// @Param sport path string true "Sport key"
// @Param date query string false "Date as YYYYMMDD"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /{sport}/games [get]
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	sb, err := h.sportHandler(chi.URLParam(r, "sport"))
	if err != nil {
		h.writeUpstreamError(w, err, "", "")
		return
	}

	date := r.URL.Query().Get("date")
	if date != "" && !validDate(date) {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_DATE", "date must be YYYYMMDD")
		return
	}

	// No date filter means "current/today" — the data may be in progress
	// right now, so it takes the short TTL tier.
	live := date == ""
	key := fmt.Sprintf("games:%s:%s", sb.Sport().Key, date)

	if entry, ok := h.cache.Get(key); ok {
		writeCached(w, r, entry)
		return
	}

	var payload interface{}
	switch sb.Sport().Family {
	case sport.FamilyGolf:
		entries, lerr := sb.Leaderboard(r.Context(), "", date)
		err = lerr
		payload = map[string]interface{}{"sport": sb.Sport().Key, "leaderboard": entries}
	case sport.FamilyRacing:
		races, rerr := sb.Races(r.Context(), date)
		err = rerr
		payload = map[string]interface{}{"sport": sb.Sport().Key, "races": races}
	case sport.FamilyMMA:
		cards, cerr := sb.Cards(r.Context(), date)
		err = cerr
		payload = map[string]interface{}{"sport": sb.Sport().Key, "cards": cards}
	default:
		games, gerr := sb.Scoreboard(r.Context(), date)
		err = gerr
		if err == nil && sb.Sport().College && sb.Sport().Family == sport.FamilyFootball && h.cfbd != nil {
			// Betting-line supplement: purely optional, never fails the
			// scoreboard.
			lines, lerr := h.cfbd.GetLines(r.Context(), time.Now().Year(), 0)
			if lerr != nil {
				h.logger.Warn("cfbd lines fetch failed", "error", lerr)
			} else {
				cfbd.EnrichGames(games, lines)
			}
		}
		payload = map[string]interface{}{"sport": sb.Sport().Key, "games": games}
	}
	if err != nil {
		h.writeUpstreamError(w, err, "NOT_FOUND", "Scoreboard not available")
		return
	}

	data, merr := json.Marshal(payload)
	if merr != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_ERROR", "Failed to encode response")
		return
	}
	etag := h.cache.Set(key, data, live)
	respond.WriteJSON(w, data, etag, cache.TTL(live), false)
}

func validDate(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
