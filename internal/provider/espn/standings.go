package espn

import (
	"context"
	"fmt"
	"strings"

	"github.com/albapepper/scorepulse/internal/provider"
)

type standingsRaw struct {
	Children []standingsGroupRaw `json:"children"`
	// Leagues without subdivisions put entries at the top level.
	Standings *standingsEntriesRaw `json:"standings"`
}

type standingsGroupRaw struct {
	Name         string               `json:"name"`
	Abbreviation string               `json:"abbreviation"`
	Standings    *standingsEntriesRaw `json:"standings"`
	Children     []standingsGroupRaw  `json:"children"`
}

type standingsEntriesRaw struct {
	Entries []struct {
		Team  teamRaw `json:"team"`
		Stats []struct {
			Name         string      `json:"name"`
			Type         string      `json:"type"`
			Value        interface{} `json:"value"`
			DisplayValue string      `json:"displayValue"`
			Summary      string      `json:"summary"`
		} `json:"stats"`
	} `json:"entries"`
}

// Standings fetches the league table grouped by conference/division.
// Entry order within a group is the upstream order — seed ties are not
// recomputed here. conference filters groups by name when non-empty.
func (h *Handler) Standings(ctx context.Context, conference string) ([]provider.Standing, error) {
	var raw standingsRaw
	if err := h.client.GetJSON(ctx, h.client.SiteURL(h.cfg.Path, "standings", nil), &raw); err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}

	var rows []provider.Standing
	if raw.Standings != nil {
		rows = append(rows, transformStandingsGroup("", raw.Standings)...)
	}
	rows = append(rows, flattenStandingsGroups(raw.Children)...)

	if conference != "" {
		var filtered []provider.Standing
		for _, row := range rows {
			if strings.Contains(strings.ToLower(row.Group), strings.ToLower(conference)) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	return rows, nil
}

func flattenStandingsGroups(groups []standingsGroupRaw) []provider.Standing {
	var rows []provider.Standing
	for _, g := range groups {
		if g.Standings != nil {
			rows = append(rows, transformStandingsGroup(g.Name, g.Standings)...)
		}
		rows = append(rows, flattenStandingsGroups(g.Children)...)
	}
	return rows
}

func transformStandingsGroup(group string, entries *standingsEntriesRaw) []provider.Standing {
	rows := make([]provider.Standing, 0, len(entries.Entries))
	for i, entry := range entries.Entries {
		row := provider.Standing{
			Group: group,
			Seed:  i + 1,
			Team: provider.Team{
				ID:           entry.Team.ID,
				Name:         entry.Team.DisplayName,
				ShortName:    entry.Team.ShortDisplayName,
				Abbreviation: entry.Team.Abbreviation,
				Color:        entry.Team.Color,
				LogoURL:      teamLogo(entry.Team),
			},
		}
		for _, stat := range entry.Stats {
			val, hasNum := provider.ExtractValue(stat.Value)
			switch strings.ToLower(firstNonEmpty(stat.Type, stat.Name)) {
			case "wins":
				row.Wins = int(val)
			case "losses":
				row.Losses = int(val)
			case "ties":
				row.Ties = int(val)
			case "otlosses", "otl":
				row.OTLosses = int(val)
			case "points":
				if hasNum {
					n := int(val)
					row.Points = &n
				}
			case "gamesbehind":
				row.GamesBehind = firstNonEmpty(stat.DisplayValue, stat.Summary)
			case "streak":
				row.Streak = firstNonEmpty(stat.DisplayValue, stat.Summary)
			case "playoffseat", "playoffseed", "rank":
				if hasNum && val > 0 {
					row.Seed = int(val)
				}
			case "total", "overall":
				if stat.Summary != "" {
					row.Team.Record = stat.Summary
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}
