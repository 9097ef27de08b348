package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/albapepper/scorepulse/internal/provider"
)

// How many seasons of history the soccer player view carries. All seasons
// are fetched in parallel; a failed season just leaves a gap.
const soccerHistorySeasons = 5

type soccerSeasonRaw struct {
	Season struct {
		Year        int    `json:"year"`
		DisplayName string `json:"displayName"`
	} `json:"season"`
	Splits []soccerSplitRaw `json:"splits"`
}

// soccerSplitRaw is one competition's stat row within a season (league,
// domestic cup, continental cup).
type soccerSplitRaw struct {
	DisplayName string          `json:"displayName"`
	Stats       []soccerStatRaw `json:"stats"`
}

type soccerStatRaw struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
}

// Percentage stats cannot be averaged across competitions; they are
// recomputed from the weighted totals. Each entry maps the percentage stat
// to the attempts stat it is a rate of.
//
// Upstream supplies only the per-competition percentage, not raw accurate
// counts, so the counts are reconstructed by rounding pct×attempts — a
// known precision approximation. Replace with direct summation if upstream
// ever exposes raw counts.
var soccerPctBase = map[string]string{
	"passPct":     "totalPasses",
	"crossPct":    "totalCrosses",
	"longballPct": "totalLongBalls",
	"dribblePct":  "dribbleAttempts",
	"shotPct":     "totalShots",
}

func (h *Handler) soccerSeasonCalls(playerID string) []provider.Call {
	year := time.Now().Year()
	calls := make([]provider.Call, 0, soccerHistorySeasons)
	for i := 0; i < soccerHistorySeasons; i++ {
		season := year - i
		calls = append(calls, provider.Call{
			Name: fmt.Sprintf("season_%d", season),
			Run: func(ctx context.Context) (interface{}, error) {
				return h.client.Get(ctx, h.client.WebURL(h.cfg.Path, "athletes/"+playerID+"/stats",
					url.Values{"season": {strconv.Itoa(season)}}))
			},
		})
	}
	return calls
}

// applySoccerCareer folds the per-season fetches into the player's career
// history, newest season first. Each season's competition rows are summed
// into a single row.
func (h *Handler) applySoccerCareer(p *provider.Player, results map[string]provider.Result) {
	year := time.Now().Year()
	for i := 0; i < soccerHistorySeasons; i++ {
		season := year - i
		res, exists := results[fmt.Sprintf("season_%d", season)]
		if !exists || !res.Ok() {
			continue
		}
		var raw soccerSeasonRaw
		if err := json.Unmarshal(res.Value.([]byte), &raw); err != nil {
			h.logger.Warn("decode soccer season", "player_id", p.ID, "season", season, "error", err)
			continue
		}
		if len(raw.Splits) == 0 {
			continue
		}
		labels, stats := aggregateSoccerSeason(raw.Splits)
		if len(stats) == 0 {
			continue
		}
		name := raw.Season.DisplayName
		if name == "" {
			name = strconv.Itoa(season)
		}
		p.CareerStats = append(p.CareerStats, provider.SeasonStats{Season: name, Stats: stats})
		if p.StatLabels == nil {
			p.StatLabels = labels
		}
	}
}

// aggregateSoccerSeason sums one season's competition rows into a single
// stat row. Counting stats add directly; percentage stats are recomputed
// from weighted implied totals. A percentage whose attempts sum to zero
// renders as "-" rather than a zero or a division error.
func aggregateSoccerSeason(splits []soccerSplitRaw) ([]string, map[string]string) {
	type acc struct {
		sum      float64
		attempts float64
		accurate float64
		pct      bool
	}

	var order []string
	accs := make(map[string]*acc)

	for _, split := range splits {
		rowVals := make(map[string]float64, len(split.Stats))
		for _, s := range split.Stats {
			rowVals[s.Name] = s.Value
		}
		for _, s := range split.Stats {
			a, seen := accs[s.Name]
			if !seen {
				a = &acc{}
				accs[s.Name] = a
				order = append(order, s.Name)
			}
			if base, isPct := soccerPctBase[s.Name]; isPct {
				a.pct = true
				attempts := rowVals[base]
				a.attempts += attempts
				a.accurate += math.Round(s.Value * attempts / 100)
			} else {
				a.sum += s.Value
			}
		}
	}

	stats := make(map[string]string, len(order))
	for _, name := range order {
		a := accs[name]
		if a.pct {
			if a.attempts == 0 {
				stats[name] = "-"
				continue
			}
			stats[name] = strconv.Itoa(int(math.Round(a.accurate/a.attempts*100))) + "%"
			continue
		}
		stats[name] = provider.FormatValue(a.sum)
	}
	return order, stats
}
