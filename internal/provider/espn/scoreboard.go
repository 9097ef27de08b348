package espn

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/scorepulse/internal/provider"
	"github.com/albapepper/scorepulse/internal/sport"
)

// Display times render in US Eastern, the convention for US sports
// schedules. Falls back to UTC if the tz database is unavailable.
var eastern = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// --------------------------------------------------------------------------
// Raw shapes — every field optional; the transformer applies defaults.
// --------------------------------------------------------------------------

type scoreboardRaw struct {
	Events []eventRaw `json:"events"`
}

type eventRaw struct {
	ID           string           `json:"id"`
	Date         string           `json:"date"`
	Name         string           `json:"name"`
	ShortName    string           `json:"shortName"`
	Competitions []competitionRaw `json:"competitions"`
	Status       statusRaw        `json:"status"`
}

type competitionRaw struct {
	ID    string `json:"id"`
	Venue *struct {
		FullName string `json:"fullName"`
	} `json:"venue"`
	Broadcasts []struct {
		Names []string `json:"names"`
	} `json:"broadcasts"`
	NeutralSite           bool            `json:"neutralSite"`
	ConferenceCompetition bool            `json:"conferenceCompetition"`
	Competitors           []competitorRaw `json:"competitors"`
	Situation             *situationRaw   `json:"situation"`
	Status                *statusRaw      `json:"status"`
	Notes                 []struct {
		Headline string `json:"headline"`
	} `json:"notes"`
	Series *struct {
		Summary string `json:"summary"`
	} `json:"series"`
}

type competitorRaw struct {
	ID          string  `json:"id"`
	HomeAway    string  `json:"homeAway"`
	Score       string  `json:"score"`
	Winner      bool    `json:"winner"`
	CuratedRank *struct {
		Current int `json:"current"`
	} `json:"curatedRank"`
	Records []struct {
		Type    string `json:"type"`
		Summary string `json:"summary"`
	} `json:"records"`
	Team teamRaw `json:"team"`
}

type teamRaw struct {
	ID               string `json:"id"`
	Location         string `json:"location"`
	Name             string `json:"name"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Abbreviation     string `json:"abbreviation"`
	Color            string `json:"color"`
	Logo             string `json:"logo"`
	Logos            []struct {
		Href string `json:"href"`
	} `json:"logos"`
}

type statusRaw struct {
	DisplayClock string  `json:"displayClock"`
	Period       int     `json:"period"`
	Clock        float64 `json:"clock"`
	Type         struct {
		Name        string `json:"name"`
		State       string `json:"state"`
		Completed   bool   `json:"completed"`
		Detail      string `json:"detail"`
		ShortDetail string `json:"shortDetail"`
	} `json:"type"`
}

type situationRaw struct {
	Balls            int    `json:"balls"`
	Strikes          int    `json:"strikes"`
	Outs             int    `json:"outs"`
	OnFirst          bool   `json:"onFirst"`
	OnSecond         bool   `json:"onSecond"`
	OnThird          bool   `json:"onThird"`
	Possession       string `json:"possession"`
	DownDistanceText string `json:"downDistanceText"`
	LastPlay         *struct {
		Text string `json:"text"`
	} `json:"lastPlay"`
}

// --------------------------------------------------------------------------
// Scoreboard operation (team-sport families)
// --------------------------------------------------------------------------

// ScoreboardURL builds the scoreboard endpoint, optionally pinned to a
// YYYYMMDD date. The URL doubles as the cache key upstream of this call.
func (h *Handler) ScoreboardURL(date string) string {
	params := url.Values{}
	if date != "" {
		params.Set("dates", date)
	}
	return h.client.SiteURL(h.cfg.Path, "scoreboard", params)
}

// Scoreboard fetches games for a date (empty date means ESPN's "today").
// One malformed event is skipped, not fatal for the batch.
func (h *Handler) Scoreboard(ctx context.Context, date string) ([]provider.Game, error) {
	var raw scoreboardRaw
	if err := h.client.GetJSON(ctx, h.ScoreboardURL(date), &raw); err != nil {
		return nil, fmt.Errorf("fetch scoreboard: %w", err)
	}

	games := make([]provider.Game, 0, len(raw.Events))
	for _, ev := range raw.Events {
		game, err := h.transformEvent(ev)
		if err != nil {
			h.logger.Warn("skipping event", "sport", h.cfg.Key, "event_id", ev.ID, "error", err)
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

// transformEvent maps one upstream event to a canonical Game. The
// competitors array is the only required object: without both sides there
// is no game to show.
func (h *Handler) transformEvent(ev eventRaw) (provider.Game, error) {
	if len(ev.Competitions) == 0 {
		return provider.Game{}, fmt.Errorf("event %s has no competitions", ev.ID)
	}
	comp := ev.Competitions[0]

	var home, away *provider.Team
	for _, c := range comp.Competitors {
		team := h.transformCompetitor(c)
		switch c.HomeAway {
		case "home":
			t := team
			home = &t
		case "away":
			t := team
			away = &t
		}
	}
	if home == nil || away == nil {
		return provider.Game{}, fmt.Errorf("event %s missing home/away competitors", ev.ID)
	}

	status := ev.Status
	if comp.Status != nil {
		status = *comp.Status
	}

	game := provider.Game{
		ID:             ev.ID,
		Sport:          h.cfg.Key,
		Status:         MapStatus(status.Type.Name, status.Type.State, status.Type.Completed),
		StatusDetail:   firstNonEmpty(status.Type.ShortDetail, status.Type.Detail),
		Period:         status.Period,
		Clock:          status.DisplayClock,
		Home:           *home,
		Away:           *away,
		ConferenceGame: comp.ConferenceCompetition,
		NeutralSite:    comp.NeutralSite,
	}

	if t, ok := parseEventTime(ev.Date); ok {
		game.StartTimeUTC = t.UTC().Format(time.RFC3339)
		game.StartTime = t.In(eastern).Format("Mon 1/2 3:04 PM ET")
	}
	if comp.Venue != nil {
		game.Venue = comp.Venue.FullName
	}
	if len(comp.Broadcasts) > 0 && len(comp.Broadcasts[0].Names) > 0 {
		game.Broadcast = strings.Join(comp.Broadcasts[0].Names, ", ")
	}
	if comp.Series != nil {
		game.SeriesNote = comp.Series.Summary
	} else if len(comp.Notes) > 0 {
		game.SeriesNote = comp.Notes[0].Headline
	}
	if comp.Situation != nil && game.Status == provider.StatusInProgress {
		game.Situation = h.transformSituation(*comp.Situation)
	}
	return game, nil
}

func (h *Handler) transformCompetitor(c competitorRaw) provider.Team {
	team := provider.Team{
		ID:           c.Team.ID,
		Name:         c.Team.DisplayName,
		ShortName:    c.Team.ShortDisplayName,
		Abbreviation: c.Team.Abbreviation,
		Color:        c.Team.Color,
		LogoURL:      teamLogo(c.Team),
		Winner:       c.Winner,
	}
	if team.Name == "" {
		team.Name = strings.TrimSpace(c.Team.Location + " " + c.Team.Name)
	}
	for _, rec := range c.Records {
		if rec.Type == "total" || team.Record == "" {
			team.Record = rec.Summary
		}
	}
	if c.Score != "" {
		if n, err := strconv.Atoi(c.Score); err == nil {
			team.Score = &n
		}
	}
	// Poll rank only exists for ranked sports; 99 is ESPN's "unranked".
	if h.cfg.Ranked && c.CuratedRank != nil {
		if r := c.CuratedRank.Current; r >= 1 && r <= 25 {
			team.Rank = &r
		}
	}
	return team
}

func (h *Handler) transformSituation(s situationRaw) *provider.Situation {
	sit := &provider.Situation{}
	switch h.cfg.Family {
	case sport.FamilyBaseball:
		sit.Balls = s.Balls
		sit.Strikes = s.Strikes
		sit.Outs = s.Outs
		sit.OnFirst = s.OnFirst
		sit.OnSecond = s.OnSecond
		sit.OnThird = s.OnThird
	case sport.FamilyFootball:
		sit.Possession = s.Possession
		sit.DownDistanceText = s.DownDistanceText
	default:
		// Other families surface only the last play text.
	}
	if s.LastPlay != nil {
		sit.LastPlay = s.LastPlay.Text
	}
	return sit
}

func teamLogo(t teamRaw) string {
	if t.Logo != "" {
		return t.Logo
	}
	if len(t.Logos) > 0 {
		return t.Logos[0].Href
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseEventTime handles ESPN's two timestamp layouts ("2025-11-11T23:30Z"
// and full RFC3339).
func parseEventTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
