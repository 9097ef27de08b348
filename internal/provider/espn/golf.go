package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strconv"

	"github.com/albapepper/scorepulse/internal/provider"
)

const holesPerRound = 18

type golfScoreboardRaw struct {
	Events []struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Date         string `json:"date"`
		Competitions []struct {
			Competitors []golfCompetitorRaw `json:"competitors"`
		} `json:"competitions"`
	} `json:"events"`
}

type golfCompetitorRaw struct {
	ID      string `json:"id"`
	Athlete *struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		Headshot    *struct {
			Href string `json:"href"`
		} `json:"headshot"`
	} `json:"athlete"`
	Status *struct {
		Position *struct {
			DisplayName string `json:"displayName"`
		} `json:"position"`
		DisplayValue string `json:"displayValue"`
	} `json:"status"`
	Score      interface{}    `json:"score"`
	Linescores []golfRoundRaw `json:"linescores"`
}

// golfRoundRaw is one round: the round total plus per-hole linescores.
type golfRoundRaw struct {
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
	Linescores   []struct {
		Value float64 `json:"value"`
	} `json:"linescores"`
}

// Leaderboard fetches the tournament leaderboard for a tour (default
// pga), pinned to a date when one is given. Position strings come
// straight from upstream — "T2", "CUT", "WD" — and are not converted to
// integer ranks.
func (h *Handler) Leaderboard(ctx context.Context, tour, date string) ([]provider.LeaderboardEntry, error) {
	path := h.cfg.Path
	if tour != "" {
		path = "golf/" + tour
	}
	params := url.Values{}
	if date != "" {
		params.Set("dates", date)
	}
	var raw golfScoreboardRaw
	if err := h.client.GetJSON(ctx, h.client.SiteURL(path, "scoreboard", params), &raw); err != nil {
		return nil, fmt.Errorf("fetch golf leaderboard: %w", err)
	}
	if len(raw.Events) == 0 || len(raw.Events[0].Competitions) == 0 {
		return nil, nil
	}
	return transformGolfLeaderboard(raw.Events[0].Competitions[0].Competitors), nil
}

func transformGolfLeaderboard(competitors []golfCompetitorRaw) []provider.LeaderboardEntry {
	round := currentRound(competitors)

	entries := make([]provider.LeaderboardEntry, 0, len(competitors))
	for _, c := range competitors {
		if c.Athlete == nil {
			continue
		}
		entry := provider.LeaderboardEntry{
			PlayerID:   c.Athlete.ID,
			PlayerName: c.Athlete.DisplayName,
			Score:      provider.ExtractString(c.Score),
			Thru:       thruDisplay(c, round),
		}
		if c.Athlete.Headshot != nil {
			entry.Headshot = c.Athlete.Headshot.Href
		}
		if c.Status != nil && c.Status.Position != nil {
			entry.Position = c.Status.Position.DisplayName
		}
		if round >= 1 && round <= len(c.Linescores) {
			entry.Today = c.Linescores[round-1].DisplayValue
		}
		entries = append(entries, entry)
	}

	sortGolfEntries(entries)
	return entries
}

// currentRound is derived, not upstream-provided: the highest round index
// for which any player has a recorded score.
func currentRound(competitors []golfCompetitorRaw) int {
	round := 0
	for _, c := range competitors {
		for i, r := range c.Linescores {
			if r.Value != 0 || r.DisplayValue != "" || len(r.Linescores) > 0 {
				if i+1 > round {
					round = i + 1
				}
			}
		}
	}
	return round
}

// thruDisplay counts hole-level linescores in the current round; a full 18
// shows as "F".
func thruDisplay(c golfCompetitorRaw, round int) string {
	if round < 1 || round > len(c.Linescores) {
		return ""
	}
	holes := len(c.Linescores[round-1].Linescores)
	if holes == 0 {
		return ""
	}
	if holes >= holesPerRound {
		return "F"
	}
	return strconv.Itoa(holes)
}

// sortGolfEntries orders numeric positions first, ascending; non-numeric
// markers ("T2", "CUT", "WD") sort after all numeric positions and keep
// their upstream order among themselves.
func sortGolfEntries(entries []provider.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		pi, iErr := strconv.Atoi(entries[i].Position)
		pj, jErr := strconv.Atoi(entries[j].Position)
		switch {
		case iErr == nil && jErr == nil:
			return pi < pj
		case iErr == nil:
			return true
		case jErr == nil:
			return false
		default:
			return false // both non-numeric: keep upstream order
		}
	})
}

// --------------------------------------------------------------------------
// World ranking supplement
// --------------------------------------------------------------------------

type golfRankingsRaw struct {
	Rankings []struct {
		Ranks []golfRankRaw `json:"ranks"`
	} `json:"rankings"`
	Ranks []golfRankRaw `json:"ranks"`
}

type golfRankRaw struct {
	Current int `json:"current"`
	Athlete *struct {
		ID string `json:"id"`
	} `json:"athlete"`
}

// applyWorldRanking backfills the player's world ranking from the rankings
// endpoint. Optional: a miss just leaves the field nil.
func applyWorldRanking(p *provider.Player, res provider.Result, logger *slog.Logger) {
	if !res.Ok() {
		return
	}
	var raw golfRankingsRaw
	if err := json.Unmarshal(res.Value.([]byte), &raw); err != nil {
		logger.Warn("decode golf rankings", "error", err)
		return
	}
	ranks := raw.Ranks
	for _, group := range raw.Rankings {
		ranks = append(ranks, group.Ranks...)
	}
	for _, r := range ranks {
		if r.Athlete != nil && r.Athlete.ID == p.ID && r.Current > 0 {
			rank := r.Current
			p.WorldRanking = &rank
			return
		}
	}
}
