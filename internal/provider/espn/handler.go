package espn

import (
	"log/slog"
	"time"

	"github.com/albapepper/scorepulse/internal/sport"
)

// Handler fetches and normalizes one sport's data. The generic operations
// (Scoreboard, Standings, TeamDetail, PlayerDetail, Leaders) live in their
// own files and branch into family-specific transforms where the upstream
// shapes diverge.
type Handler struct {
	client *Client
	cfg    sport.Config
	logger *slog.Logger
	now    func() time.Time
}

// New creates a handler for one sport.
func New(client *Client, cfg sport.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{client: client, cfg: cfg, logger: logger, now: time.Now}
}

// WithClock replaces the handler's clock for age derivation. Tests use it
// to pin birthday arithmetic.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// Sport returns the sport config this handler serves.
func (h *Handler) Sport() sport.Config {
	return h.cfg
}
