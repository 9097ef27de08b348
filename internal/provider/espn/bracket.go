package espn

import (
	"context"
	"fmt"

	"github.com/albapepper/scorepulse/internal/provider"
)

// Bracket fetches the tournament bracket as a pass-through payload. The
// bracket structure varies per sport and season; consumers render it as-is.
func (h *Handler) Bracket(ctx context.Context) (*provider.Bracket, error) {
	body, err := h.client.Get(ctx, h.client.SiteURL(h.cfg.Path, "bracket", nil))
	if err != nil {
		return nil, fmt.Errorf("fetch bracket: %w", err)
	}
	return &provider.Bracket{Sport: h.cfg.Key, Data: body}, nil
}
