package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/albapepper/scorepulse/internal/provider"
)

// Constructor brand colors, display only. Static because upstream has no
// source of truth for these; they go stale when a constructor rebrands.
var constructorColors = map[string]string{
	"Mercedes":     "#27F4D2",
	"Ferrari":      "#E8002D",
	"Red Bull":     "#3671C6",
	"McLaren":      "#FF8000",
	"Aston Martin": "#229971",
	"Alpine":       "#FF87BC",
	"Williams":     "#64C4FF",
	"RB":           "#6692FF",
	"Haas":         "#B6BABD",
	"Kick Sauber":  "#52E252",
}

// ConstructorColor returns the brand color for a constructor, empty when
// unknown.
func ConstructorColor(name string) string {
	return constructorColors[name]
}

type raceScoreboardRaw struct {
	Events []struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		ShortName    string    `json:"shortName"`
		Date         string    `json:"date"`
		Status       statusRaw `json:"status"`
		Competitions []struct {
			Venue *struct {
				FullName string `json:"fullName"`
			} `json:"venue"`
			Status      *statusRaw          `json:"status"`
			Competitors []raceCompetitorRaw `json:"competitors"`
		} `json:"competitions"`
	} `json:"events"`
}

type raceCompetitorRaw struct {
	ID      string `json:"id"`
	Order   int    `json:"order"`
	Winner  bool   `json:"winner"`
	Athlete *struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"athlete"`
	Vehicle *struct {
		Manufacturer string `json:"manufacturer"`
	} `json:"vehicle"`
	Statistics []struct {
		Name         string `json:"name"`
		DisplayValue string `json:"displayValue"`
	} `json:"statistics"`
}

// Races fetches race weekends for a date with their finishing order.
func (h *Handler) Races(ctx context.Context, date string) ([]provider.Race, error) {
	params := url.Values{}
	if date != "" {
		params.Set("dates", date)
	}
	var raw raceScoreboardRaw
	if err := h.client.GetJSON(ctx, h.client.SiteURL(h.cfg.Path, "scoreboard", params), &raw); err != nil {
		return nil, fmt.Errorf("fetch races: %w", err)
	}

	races := make([]provider.Race, 0, len(raw.Events))
	for _, ev := range raw.Events {
		race := provider.Race{
			ID:     ev.ID,
			Name:   firstNonEmpty(ev.Name, ev.ShortName),
			Status: MapStatus(ev.Status.Type.Name, ev.Status.Type.State, ev.Status.Type.Completed),
		}
		if t, ok := parseEventTime(ev.Date); ok {
			race.StartTime = t.In(eastern).Format("Mon 1/2 3:04 PM ET")
		}
		if len(ev.Competitions) > 0 {
			comp := ev.Competitions[0]
			if comp.Venue != nil {
				race.Venue = comp.Venue.FullName
			}
			if comp.Status != nil {
				race.Status = MapStatus(comp.Status.Type.Name, comp.Status.Type.State, comp.Status.Type.Completed)
			}
			for _, c := range comp.Competitors {
				if c.Athlete == nil {
					continue
				}
				entry := provider.LeaderboardEntry{
					Rank:       c.Order,
					PlayerID:   c.Athlete.ID,
					PlayerName: c.Athlete.DisplayName,
				}
				if c.Vehicle != nil {
					entry.TeamAbbrev = c.Vehicle.Manufacturer
				}
				for _, s := range c.Statistics {
					if s.Name == "behindTime" || s.Name == "totalTime" {
						entry.DisplayValue = s.DisplayValue
						break
					}
				}
				race.Results = append(race.Results, entry)
			}
		}
		races = append(races, race)
	}
	return races, nil
}

// --------------------------------------------------------------------------
// Constructor backfill supplement
// --------------------------------------------------------------------------

type racingStandingsRaw struct {
	Standings *racingEntriesRaw `json:"standings"`
	Children  []struct {
		Standings *racingEntriesRaw `json:"standings"`
	} `json:"children"`
}

type racingEntriesRaw struct {
	Entries []struct {
		Athlete *struct {
			ID string `json:"id"`
		} `json:"athlete"`
		Team *struct {
			DisplayName string `json:"displayName"`
		} `json:"team"`
		Vehicle *struct {
			Manufacturer string `json:"manufacturer"`
		} `json:"vehicle"`
	} `json:"entries"`
}

// applyConstructor backfills a driver's constructor from the standings
// list when the bio doesn't carry it, then attaches the brand color. The
// standings call is optional; without it the constructor simply stays
// empty.
func applyConstructor(p *provider.Player, res provider.Result, logger *slog.Logger) {
	if p.Constructor == "" && res.Ok() {
		var raw racingStandingsRaw
		if err := json.Unmarshal(res.Value.([]byte), &raw); err != nil {
			logger.Warn("decode driver standings", "error", err)
		} else {
			p.Constructor = constructorFor(p.ID, raw)
		}
	}
	if p.Constructor == "" {
		return
	}
	p.Team = &provider.Team{
		Name:  p.Constructor,
		Color: ConstructorColor(p.Constructor),
	}
}

func constructorFor(driverID string, raw racingStandingsRaw) string {
	groups := []*racingEntriesRaw{raw.Standings}
	for _, child := range raw.Children {
		groups = append(groups, child.Standings)
	}
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, e := range g.Entries {
			if e.Athlete == nil || e.Athlete.ID != driverID {
				continue
			}
			if e.Team != nil && e.Team.DisplayName != "" {
				return e.Team.DisplayName
			}
			if e.Vehicle != nil {
				return e.Vehicle.Manufacturer
			}
		}
	}
	return ""
}
