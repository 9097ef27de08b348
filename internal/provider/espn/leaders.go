package espn

import (
	"context"
	"fmt"
	"strings"

	"github.com/albapepper/scorepulse/internal/provider"
)

type leadersRaw struct {
	Leaders struct {
		Categories []struct {
			Name        string `json:"name"`
			DisplayName string `json:"displayName"`
			Leaders     []struct {
				Value        float64 `json:"value"`
				DisplayValue string  `json:"displayValue"`
				Athlete      *struct {
					ID          string `json:"id"`
					DisplayName string `json:"displayName"`
					Headshot    *struct {
						Href string `json:"href"`
					} `json:"headshot"`
				} `json:"athlete"`
				Team *struct {
					Abbreviation string `json:"abbreviation"`
				} `json:"team"`
			} `json:"leaders"`
		} `json:"categories"`
	} `json:"leaders"`
}

// Leaders fetches stat leaders grouped by category. Ranks are plain
// 1-based integers in upstream order — stat-leader lists carry no tie
// notation, unlike golf leaderboards. category filters by name when
// non-empty.
func (h *Handler) Leaders(ctx context.Context, category string) ([]provider.LeaderCategory, error) {
	var raw leadersRaw
	if err := h.client.GetJSON(ctx, h.client.SiteURL(h.cfg.Path, "leaders", nil), &raw); err != nil {
		return nil, fmt.Errorf("fetch leaders: %w", err)
	}

	var out []provider.LeaderCategory
	for _, cat := range raw.Leaders.Categories {
		if category != "" && !strings.EqualFold(cat.Name, category) &&
			!strings.Contains(strings.ToLower(cat.DisplayName), strings.ToLower(category)) {
			continue
		}
		group := provider.LeaderCategory{Name: cat.Name, Display: cat.DisplayName}
		for i, l := range cat.Leaders {
			// A leader row without an athlete is unusable; drop the row,
			// keep the category.
			if l.Athlete == nil {
				continue
			}
			entry := provider.LeaderboardEntry{
				Rank:         i + 1,
				PlayerID:     l.Athlete.ID,
				PlayerName:   l.Athlete.DisplayName,
				Value:        l.Value,
				DisplayValue: l.DisplayValue,
			}
			if l.Athlete.Headshot != nil {
				entry.Headshot = l.Athlete.Headshot.Href
			}
			if l.Team != nil {
				entry.TeamAbbrev = l.Team.Abbreviation
			}
			group.Entries = append(group.Entries, entry)
		}
		out = append(out, group)
	}
	return out, nil
}
