package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/albapepper/scorepulse/internal/provider"
	"github.com/albapepper/scorepulse/internal/sport"
)

// --------------------------------------------------------------------------
// Raw shapes
// --------------------------------------------------------------------------

type athleteResponseRaw struct {
	Athlete athleteRaw `json:"athlete"`
}

type athleteRaw struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	FullName    string `json:"fullName"`
	DisplayName string `json:"displayName"`
	Jersey      string `json:"jersey"`
	Position    *struct {
		Name         string `json:"name"`
		DisplayName  string `json:"displayName"`
		Abbreviation string `json:"abbreviation"`
	} `json:"position"`
	Headshot *struct {
		Href string `json:"href"`
	} `json:"headshot"`
	Team          *teamRaw `json:"team"`
	DisplayHeight string   `json:"displayHeight"`
	DisplayWeight string   `json:"displayWeight"`
	Age           *int     `json:"age"`
	DateOfBirth   string   `json:"dateOfBirth"`
	DisplayDOB    string   `json:"displayDOB"`
	BirthPlace    *struct {
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"birthPlace"`
	Citizenship string `json:"citizenship"`
	College     *struct {
		Name string `json:"name"`
	} `json:"college"`
	Draft *struct {
		DisplayText string `json:"displayText"`
	} `json:"draft"`
	DisplayReach string `json:"displayReach"`
	Stance       *struct {
		Text string `json:"text"`
	} `json:"stance"`
	Vehicles []struct {
		Team string `json:"team"`
	} `json:"vehicles"`
}

type athleteStatsRaw struct {
	Categories []statCategory `json:"categories"`
	Splits     *struct {
		Categories []statCategory `json:"categories"`
	} `json:"splits"`
}

func (r athleteStatsRaw) categories() []statCategory {
	if len(r.Categories) > 0 {
		return r.Categories
	}
	if r.Splits != nil {
		return r.Splits.Categories
	}
	return nil
}

// --------------------------------------------------------------------------
// Player detail operation
// --------------------------------------------------------------------------

// PlayerDetail assembles a canonical player from the bio endpoint
// (required) plus the stats endpoint and any family-specific supplementary
// calls (all optional). Optional failures degrade to nil fields.
func (h *Handler) PlayerDetail(ctx context.Context, playerID string) (*provider.Player, error) {
	calls := []provider.Call{
		{
			Name:     "bio",
			Required: true,
			Run: func(ctx context.Context) (interface{}, error) {
				return h.client.Get(ctx, h.client.WebURL(h.cfg.Path, "athletes/"+playerID, nil))
			},
		},
		{
			Name: "stats",
			Run: func(ctx context.Context) (interface{}, error) {
				return h.client.Get(ctx, h.client.WebURL(h.cfg.Path, "athletes/"+playerID+"/stats", nil))
			},
		},
	}
	calls = append(calls, h.playerSupplementCalls(playerID)...)

	results, err := provider.Gather(ctx, h.logger, calls)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", playerID, err)
	}

	var bio athleteResponseRaw
	if err := json.Unmarshal(results["bio"].Value.([]byte), &bio); err != nil {
		// A garbled required payload is indistinguishable from a missing
		// player as far as the caller is concerned.
		return nil, fmt.Errorf("player %s: %w: decode bio: %v", playerID, ErrNotFound, err)
	}

	player := h.normalizeAthlete(bio.Athlete)
	if player.ID == "" {
		player.ID = playerID
	}

	if res := results["stats"]; res.Ok() {
		var stats athleteStatsRaw
		if err := json.Unmarshal(res.Value.([]byte), &stats); err != nil {
			h.logger.Warn("decode player stats", "player_id", playerID, "error", err)
		} else {
			h.applyCurrentStats(&player, stats.categories())
		}
	}

	h.applyPlayerSupplements(ctx, &player, results)
	return &player, nil
}

// playerSupplementCalls returns the extra fan-out calls a family needs
// beyond bio+stats.
func (h *Handler) playerSupplementCalls(playerID string) []provider.Call {
	switch h.cfg.Family {
	case sport.FamilyRacing:
		return []provider.Call{{
			Name: "driver_standings",
			Run: func(ctx context.Context) (interface{}, error) {
				return h.client.Get(ctx, h.client.SiteURL(h.cfg.Path, "standings", nil))
			},
		}}
	case sport.FamilyGolf:
		return []provider.Call{{
			Name: "rankings",
			Run: func(ctx context.Context) (interface{}, error) {
				return h.client.Get(ctx, h.client.SiteURL(h.cfg.Path, "rankings", nil))
			},
		}}
	case sport.FamilySoccer:
		return h.soccerSeasonCalls(playerID)
	default:
		return nil
	}
}

// applyCurrentStats picks the stat category for the player's role and
// flattens it onto the player. Family-specific selection lives with each
// family's transforms.
func (h *Handler) applyCurrentStats(p *provider.Player, categories []statCategory) {
	switch h.cfg.Family {
	case sport.FamilyBaseball:
		applyBaseballStats(p, categories)
	case sport.FamilyHockey:
		applyHockeyStats(p, categories)
	case sport.FamilyBasketball:
		applyFlatStats(p, pickCategory(categories, "pergame", "averages"))
	case sport.FamilyFootball:
		applyFlatStats(p, pickCategory(categories, footballStatPreferences(p.Position)...))
	case sport.FamilySoccer:
		applyFlatStats(p, pickCategory(categories, "general", "offensive"))
	default:
		applyFlatStats(p, pickCategory(categories))
	}
}

// applyPlayerSupplements folds family supplementary results into the
// player after the base assembly.
func (h *Handler) applyPlayerSupplements(ctx context.Context, p *provider.Player, results map[string]provider.Result) {
	switch h.cfg.Family {
	case sport.FamilyRacing:
		applyConstructor(p, results["driver_standings"], h.logger)
	case sport.FamilyGolf:
		applyWorldRanking(p, results["rankings"], h.logger)
	case sport.FamilySoccer:
		h.applySoccerCareer(p, results)
	}
}

func applyFlatStats(p *provider.Player, cat *statCategory) {
	labels, stats := categoryStats(cat, "")
	if len(stats) == 0 {
		return
	}
	p.StatLabels = labels
	p.CurrentStats = stats
}

func footballStatPreferences(position string) []string {
	switch strings.ToUpper(position) {
	case "QB", "QUARTERBACK":
		return []string{"passing"}
	case "RB", "FB", "RUNNING BACK":
		return []string{"rushing"}
	case "WR", "TE", "WIDE RECEIVER", "TIGHT END":
		return []string{"receiving"}
	case "K", "P", "PK":
		return []string{"kicking", "punting"}
	default:
		return []string{"defensive", "defense"}
	}
}

// --------------------------------------------------------------------------
// Bio normalization
// --------------------------------------------------------------------------

func (h *Handler) normalizeAthlete(raw athleteRaw) provider.Player {
	p := provider.Player{
		ID:        raw.ID,
		FirstName: raw.FirstName,
		LastName:  raw.LastName,
		FullName:  firstNonEmpty(raw.FullName, raw.DisplayName, strings.TrimSpace(raw.FirstName+" "+raw.LastName)),
		Jersey:    raw.Jersey,
		Height:    raw.DisplayHeight,
		Weight:    raw.DisplayWeight,
		Reach:     raw.DisplayReach,
	}

	if raw.Position != nil {
		p.Position = firstNonEmpty(raw.Position.Abbreviation, raw.Position.Name, raw.Position.DisplayName)
	}
	if raw.Headshot != nil {
		p.Headshot = raw.Headshot.Href
	}
	if raw.Stance != nil {
		p.Stance = raw.Stance.Text
	}
	if raw.College != nil {
		p.College = raw.College.Name
	}
	if raw.Draft != nil {
		p.Draft = raw.Draft.DisplayText
	}
	if raw.Team != nil && raw.Team.ID != "" {
		p.Team = &provider.Team{
			ID:           raw.Team.ID,
			Name:         raw.Team.DisplayName,
			ShortName:    raw.Team.ShortDisplayName,
			Abbreviation: raw.Team.Abbreviation,
			Color:        raw.Team.Color,
			LogoURL:      teamLogo(*raw.Team),
		}
	}
	if len(raw.Vehicles) > 0 {
		p.Constructor = raw.Vehicles[0].Team
	}

	p.Nationality = raw.Citizenship
	if p.Nationality == "" && raw.BirthPlace != nil {
		p.Nationality = raw.BirthPlace.Country
	}

	p.BirthDate = firstNonEmpty(raw.DisplayDOB, raw.DateOfBirth)
	if raw.Age != nil && *raw.Age > 0 {
		p.Age = raw.Age
	} else {
		p.Age = deriveAge(p.BirthDate, h.now())
	}
	return p
}

// deriveAge computes age from a date-of-birth string when the upstream age
// field is absent. Accepts the display format ("1/15/1990") and ISO
// timestamps. Returns nil — never zero or negative — when the string does
// not parse or yields a non-positive age.
func deriveAge(dob string, now time.Time) *int {
	if dob == "" {
		return nil
	}
	var born time.Time
	var ok bool
	for _, layout := range []string{"1/2/2006", "2006-01-02T15:04Z07:00", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, dob); err == nil {
			born, ok = t, true
			break
		}
	}
	if !ok {
		return nil
	}

	age := now.Year() - born.Year()
	// Birthday hasn't come around yet this year.
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	if age <= 0 {
		return nil
	}
	return &age
}
