package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/scorepulse/internal/api/respond"
	"github.com/albapepper/scorepulse/internal/cache"
)

// GetBracket returns the tournament bracket as a pass-through payload.
// @Summary Tournament bracket
// @Description Returns the upstream bracket structure unmodified.
// @Tags brackets
// @Produce json
// @Param sport path string true "Sport key"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /{sport}/bracket [get]
func (h *Handler) GetBracket(w http.ResponseWriter, r *http.Request) {
	sb, err := h.sportHandler(chi.URLParam(r, "sport"))
	if err != nil {
		h.writeUpstreamError(w, err, "", "")
		return
	}

	key := fmt.Sprintf("bracket:%s", sb.Sport().Key)
	if entry, ok := h.cache.Get(key); ok {
		writeCached(w, r, entry)
		return
	}

	bracket, err := sb.Bracket(r.Context())
	if err != nil {
		h.writeUpstreamError(w, err, "NOT_FOUND", "No bracket available")
		return
	}

	data, merr := json.Marshal(bracket)
	if merr != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_ERROR", "Failed to encode response")
		return
	}
	etag := h.cache.Set(key, data, false)
	respond.WriteJSON(w, data, etag, cache.TTL(false), false)
}
