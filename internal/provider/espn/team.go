package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/albapepper/scorepulse/internal/provider"
)

type teamDetailRaw struct {
	Team struct {
		teamRaw
		StandingSummary string `json:"standingSummary"`
		Record          *struct {
			Items []struct {
				Summary string `json:"summary"`
			} `json:"items"`
		} `json:"record"`
		Athletes   []athleteRaw `json:"athletes"`
		Statistics []struct {
			Name         string      `json:"name"`
			Abbreviation string      `json:"abbreviation"`
			Value        interface{} `json:"value"`
			DisplayValue string      `json:"displayValue"`
		} `json:"statistics"`
	} `json:"team"`
}

type scheduleRaw struct {
	Events []eventRaw `json:"events"`
}

// TeamURL builds the team lookup endpoint with roster and stats enabled.
func (h *Handler) TeamURL(teamID string) string {
	return h.client.SiteURL(h.cfg.Path, "teams/"+teamID, url.Values{"enable": {"roster,stats"}})
}

// TeamDetail assembles the team view. The team lookup is required and runs
// first: a 404 there short-circuits the whole request before any
// supplementary fan-out is issued. Schedule and standings are optional and
// degrade to nil sections.
func (h *Handler) TeamDetail(ctx context.Context, teamID string) (*provider.TeamDetail, error) {
	body, err := h.client.Get(ctx, h.TeamURL(teamID))
	if err != nil {
		return nil, fmt.Errorf("team %s: %w", teamID, err)
	}
	var raw teamDetailRaw
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("team %s: %w: decode: %v", teamID, ErrNotFound, err)
	}
	if raw.Team.ID == "" {
		return nil, fmt.Errorf("team %s: %w", teamID, ErrNotFound)
	}

	detail := &provider.TeamDetail{
		Team: provider.Team{
			ID:           raw.Team.ID,
			Name:         raw.Team.DisplayName,
			ShortName:    raw.Team.ShortDisplayName,
			Abbreviation: raw.Team.Abbreviation,
			Color:        raw.Team.Color,
			LogoURL:      teamLogo(raw.Team.teamRaw),
		},
	}
	if raw.Team.Record != nil && len(raw.Team.Record.Items) > 0 {
		detail.Team.Record = raw.Team.Record.Items[0].Summary
	}

	for _, athlete := range raw.Team.Athletes {
		p := h.normalizeAthlete(athlete)
		if p.ID == "" {
			continue
		}
		detail.Roster = append(detail.Roster, p)
	}

	if len(raw.Team.Statistics) > 0 {
		detail.Stats = make(map[string]string, len(raw.Team.Statistics))
		for _, s := range raw.Team.Statistics {
			label := firstNonEmpty(s.Abbreviation, s.Name)
			if label == "" {
				continue
			}
			detail.Stats[label] = firstNonEmpty(s.DisplayValue, provider.ExtractString(s.Value))
		}
	}

	results, _ := provider.Gather(ctx, h.logger, []provider.Call{
		{
			Name: "schedule",
			Run: func(ctx context.Context) (interface{}, error) {
				return h.client.Get(ctx, h.client.SiteURL(h.cfg.Path, "teams/"+teamID+"/schedule", nil))
			},
		},
		{
			Name: "standings",
			Run: func(ctx context.Context) (interface{}, error) {
				return h.Standings(ctx, "")
			},
		},
	})

	if res := results["schedule"]; res.Ok() {
		var sched scheduleRaw
		if err := json.Unmarshal(res.Value.([]byte), &sched); err != nil {
			h.logger.Warn("decode team schedule", "team_id", teamID, "error", err)
		} else {
			for _, ev := range sched.Events {
				game, err := h.transformEvent(ev)
				if err != nil {
					continue
				}
				detail.Schedule = append(detail.Schedule, game)
			}
			detail.RecentForm = recentForm(detail.Team.ID, detail.Schedule, 5)
		}
	}

	if res := results["standings"]; res.Ok() {
		if rows, ok := res.Value.([]provider.Standing); ok {
			detail.Standings = standingsGroupFor(detail.Team.ID, rows)
		}
	}

	return detail, nil
}

// recentForm walks completed games newest-last and returns the trailing n
// results from the team's perspective.
func recentForm(teamID string, schedule []provider.Game, n int) []provider.FormEntry {
	var form []provider.FormEntry
	for _, g := range schedule {
		if g.Status != provider.StatusFinal {
			continue
		}
		us, them := g.Home, g.Away
		if g.Away.ID == teamID {
			us, them = g.Away, g.Home
		}
		if us.Score == nil || them.Score == nil {
			continue
		}
		form = append(form, provider.FormEntry{
			Opponent: firstNonEmpty(them.Abbreviation, them.ShortName, them.Name),
			Win:      *us.Score > *them.Score,
			Score:    fmt.Sprintf("%d-%d", *us.Score, *them.Score),
		})
	}
	if len(form) > n {
		form = form[len(form)-n:]
	}
	return form
}

// standingsGroupFor returns the division/conference group containing the
// team, or all rows when the team isn't found in any group.
func standingsGroupFor(teamID string, rows []provider.Standing) []provider.Standing {
	var group string
	for _, row := range rows {
		if row.Team.ID == teamID {
			group = row.Group
			break
		}
	}
	if group == "" {
		return rows
	}
	var out []provider.Standing
	for _, row := range rows {
		if strings.EqualFold(row.Group, group) {
			out = append(out, row)
		}
	}
	return out
}
