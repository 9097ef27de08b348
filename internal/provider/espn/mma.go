package espn

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/albapepper/scorepulse/internal/provider"
)

// resultPrefix introduces the finish type in ESPN's free-text status
// detail, e.g. "Result - KO/TKO" or "Result - Unanimous Decision".
const resultPrefix = "Result - "

// Full decision names map to the abbreviations the card view renders.
// Unrecognized suffixes pass through verbatim rather than being dropped.
var decisionAbbrevs = map[string]string{
	"Unanimous Decision": "UD",
	"Split Decision":     "SD",
	"Majority Decision":  "MD",
	"Technical Decision": "TD",
	"Submission":         "SUB",
}

// ParseResultType extracts the fight finish from a status-detail string.
// Returns "" when the detail carries no result.
func ParseResultType(statusDetail string) string {
	idx := strings.Index(statusDetail, resultPrefix)
	if idx < 0 {
		return ""
	}
	result := strings.TrimSpace(statusDetail[idx+len(resultPrefix):])
	if abbrev, ok := decisionAbbrevs[result]; ok {
		return abbrev
	}
	return result
}

type mmaScoreboardRaw struct {
	Events []struct {
		ID           string              `json:"id"`
		Name         string              `json:"name"`
		Date         string              `json:"date"`
		Competitions []mmaCompetitionRaw `json:"competitions"`
		Venues       []struct {
			FullName string `json:"fullName"`
		} `json:"venues"`
	} `json:"events"`
}

type mmaCompetitionRaw struct {
	ID     string     `json:"id"`
	Status *statusRaw `json:"status"`
	Type   *struct {
		Text         string `json:"text"`
		Abbreviation string `json:"abbreviation"`
	} `json:"type"`
	Competitors []struct {
		ID      string `json:"id"`
		Winner  bool   `json:"winner"`
		Athlete *struct {
			ID          string `json:"id"`
			DisplayName string `json:"displayName"`
			Headshot    *struct {
				Href string `json:"href"`
			} `json:"headshot"`
		} `json:"athlete"`
		Records []struct {
			Summary string `json:"summary"`
		} `json:"records"`
	} `json:"competitors"`
}

// Cards fetches MMA events for a date. Each ESPN "event" is a card; each
// competition on it is a bout. A bout without two fighters is dropped, not
// fatal for the card.
func (h *Handler) Cards(ctx context.Context, date string) ([]provider.FightCard, error) {
	params := url.Values{}
	if date != "" {
		params.Set("dates", date)
	}
	var raw mmaScoreboardRaw
	if err := h.client.GetJSON(ctx, h.client.SiteURL(h.cfg.Path, "scoreboard", params), &raw); err != nil {
		return nil, fmt.Errorf("fetch fight cards: %w", err)
	}

	cards := make([]provider.FightCard, 0, len(raw.Events))
	for _, ev := range raw.Events {
		card := provider.FightCard{
			ID:   ev.ID,
			Name: ev.Name,
		}
		if t, ok := parseEventTime(ev.Date); ok {
			card.StartTime = t.In(eastern).Format("Mon 1/2 3:04 PM ET")
		}
		if len(ev.Venues) > 0 {
			card.Venue = ev.Venues[0].FullName
		}
		for _, comp := range ev.Competitions {
			fight, err := transformFight(comp)
			if err != nil {
				h.logger.Warn("skipping bout", "card_id", ev.ID, "bout_id", comp.ID, "error", err)
				continue
			}
			card.Fights = append(card.Fights, fight)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func transformFight(comp mmaCompetitionRaw) (provider.Fight, error) {
	fight := provider.Fight{
		ID:     comp.ID,
		Status: provider.StatusScheduled,
	}
	if comp.Type != nil {
		fight.WeightClass = comp.Type.Text
	}
	if comp.Status != nil {
		fight.Status = MapStatus(comp.Status.Type.Name, comp.Status.Type.State, comp.Status.Type.Completed)
		fight.StatusDetail = firstNonEmpty(comp.Status.Type.ShortDetail, comp.Status.Type.Detail)
		if fight.Status == provider.StatusFinal {
			fight.ResultType = ParseResultType(comp.Status.Type.Detail)
		}
	}

	for _, c := range comp.Competitors {
		if c.Athlete == nil {
			continue
		}
		fighter := provider.Fighter{
			ID:     c.Athlete.ID,
			Name:   c.Athlete.DisplayName,
			Winner: c.Winner,
		}
		if c.Athlete.Headshot != nil {
			fighter.Headshot = c.Athlete.Headshot.Href
		}
		if len(c.Records) > 0 {
			fighter.Record = c.Records[0].Summary
		}
		fight.Fighters = append(fight.Fighters, fighter)
	}
	if len(fight.Fighters) < 2 {
		return provider.Fight{}, fmt.Errorf("bout %s has %d fighters", comp.ID, len(fight.Fighters))
	}
	return fight, nil
}
