// Package provider defines the canonical data types that every upstream
// transformer normalizes into. These structs are the contract between the
// provider handlers and the API layer — transformers output these, handlers
// marshal them straight to the response.
//
// All canonical entities are value types produced fresh on each transform
// call. Nothing here holds a reference back to upstream payloads.
package provider

import "encoding/json"

// GameStatus is the canonical game state. Every upstream status string maps
// into exactly one of these three values.
type GameStatus string

const (
	StatusScheduled  GameStatus = "scheduled"
	StatusInProgress GameStatus = "in_progress"
	StatusFinal      GameStatus = "final"
)

// Team is the canonical team shape. Rank is nil for unranked teams and for
// sports without polls — never zero. Score is nil outside a game context.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
	Color        string `json:"color,omitempty"`
	Record       string `json:"record,omitempty"`
	Rank         *int   `json:"rank,omitempty"`
	Score        *int   `json:"score,omitempty"`
	Winner       bool   `json:"winner,omitempty"`
}

// Situation carries live in-game context. Only the fields relevant to the
// sport are populated (count/baserunners for baseball, possession and down
// for football).
type Situation struct {
	Balls            int    `json:"balls,omitempty"`
	Strikes          int    `json:"strikes,omitempty"`
	Outs             int    `json:"outs,omitempty"`
	OnFirst          bool   `json:"on_first,omitempty"`
	OnSecond         bool   `json:"on_second,omitempty"`
	OnThird          bool   `json:"on_third,omitempty"`
	Possession       string `json:"possession,omitempty"`
	DownDistanceText string `json:"down_distance_text,omitempty"`
	LastPlay         string `json:"last_play,omitempty"`
}

// GameOdds is the consensus betting line supplement from the secondary
// college-football provider. Display only.
type GameOdds struct {
	Provider  string   `json:"provider,omitempty"`
	Spread    string   `json:"spread,omitempty"`
	OverUnder *float64 `json:"over_under,omitempty"`
}

// Game is the canonical event shape. StartTime is formatted in US Eastern
// for display; StartTimeUTC preserves the instant.
type Game struct {
	ID             string     `json:"id"`
	Sport          string     `json:"sport"`
	Status         GameStatus `json:"status"`
	StatusDetail   string     `json:"status_detail,omitempty"`
	Period         int        `json:"period,omitempty"`
	Clock          string     `json:"clock,omitempty"`
	StartTime      string     `json:"start_time,omitempty"`
	StartTimeUTC   string     `json:"start_time_utc,omitempty"`
	Venue          string     `json:"venue,omitempty"`
	Broadcast      string     `json:"broadcast,omitempty"`
	Home           Team       `json:"home"`
	Away           Team       `json:"away"`
	ConferenceGame bool       `json:"conference_game,omitempty"`
	NeutralSite    bool       `json:"neutral_site,omitempty"`
	SeriesNote     string     `json:"series_note,omitempty"`
	Situation      *Situation `json:"situation,omitempty"`
	Odds           *GameOdds  `json:"odds,omitempty"`
}

// Standing is one row of a conference or division table. Seed order within
// one group follows the upstream-provided ordering; ties are not recomputed.
type Standing struct {
	Group       string `json:"group,omitempty"`
	Seed        int    `json:"seed"`
	Team        Team   `json:"team"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Ties        int    `json:"ties,omitempty"`
	OTLosses    int    `json:"ot_losses,omitempty"`
	Points      *int   `json:"points,omitempty"`
	GamesBehind string `json:"games_behind,omitempty"`
	Streak      string `json:"streak,omitempty"`
}

// SeasonStats is one season's stat row in a player's career history.
type SeasonStats struct {
	Season string            `json:"season"`
	Team   string            `json:"team,omitempty"`
	Stats  map[string]string `json:"stats"`
}

// Player is the canonical player profile. CurrentStats is nil (not empty)
// when the stats fetch failed or the player has none; when present its keys
// are a subset of StatLabels. Team is nil for free agents and individual
// sports.
type Player struct {
	ID           string            `json:"id"`
	FirstName    string            `json:"first_name,omitempty"`
	LastName     string            `json:"last_name,omitempty"`
	FullName     string            `json:"full_name"`
	Jersey       string            `json:"jersey,omitempty"`
	Position     string            `json:"position,omitempty"`
	Headshot     string            `json:"headshot,omitempty"`
	Team         *Team             `json:"team,omitempty"`
	Height       string            `json:"height,omitempty"`
	Weight       string            `json:"weight,omitempty"`
	Age          *int              `json:"age,omitempty"`
	BirthDate    string            `json:"birth_date,omitempty"`
	Nationality  string            `json:"nationality,omitempty"`
	College      string            `json:"college,omitempty"`
	Draft        string            `json:"draft,omitempty"`
	Reach        string            `json:"reach,omitempty"`
	Stance       string            `json:"stance,omitempty"`
	Constructor  string            `json:"constructor,omitempty"`
	WorldRanking *int              `json:"world_ranking,omitempty"`
	StatLabels   []string          `json:"stat_labels,omitempty"`
	CurrentStats map[string]string `json:"current_stats"`
	CareerStats  []SeasonStats     `json:"career_stats,omitempty"`
}

// LeaderboardEntry is one row of a stat-leaders list or a golf tournament
// leaderboard. Stat leaders use plain 1-based Rank; golf carries the
// upstream position string ("T2", "CUT") and score/thru fields instead.
type LeaderboardEntry struct {
	Rank         int     `json:"rank,omitempty"`
	Position     string  `json:"position,omitempty"`
	PlayerID     string  `json:"player_id,omitempty"`
	PlayerName   string  `json:"player_name"`
	TeamAbbrev   string  `json:"team_abbrev,omitempty"`
	Headshot     string  `json:"headshot,omitempty"`
	Value        float64 `json:"value,omitempty"`
	DisplayValue string  `json:"display_value,omitempty"`
	Score        string  `json:"score,omitempty"`
	Today        string  `json:"today,omitempty"`
	Thru         string  `json:"thru,omitempty"`
}

// LeaderCategory groups leaderboard entries under a stat category label.
type LeaderCategory struct {
	Name    string             `json:"name"`
	Display string             `json:"display,omitempty"`
	Entries []LeaderboardEntry `json:"entries"`
}

// Fighter is one corner of a fight.
type Fighter struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Record   string `json:"record,omitempty"`
	Headshot string `json:"headshot,omitempty"`
	Winner   bool   `json:"winner,omitempty"`
}

// Fight is one bout on an MMA card. ResultType is the parsed finish
// ("KO/TKO", "SUB", "UD", ...) and is empty until the fight is final.
type Fight struct {
	ID           string     `json:"id"`
	Status       GameStatus `json:"status"`
	StatusDetail string     `json:"status_detail,omitempty"`
	ResultType   string     `json:"result_type,omitempty"`
	WeightClass  string     `json:"weight_class,omitempty"`
	Fighters     []Fighter  `json:"fighters"`
}

// Race is one motorsport event with its finishing order.
type Race struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Status    GameStatus         `json:"status"`
	StartTime string             `json:"start_time,omitempty"`
	Venue     string             `json:"venue,omitempty"`
	Results   []LeaderboardEntry `json:"results,omitempty"`
}

// FightCard is one MMA event with its bouts.
type FightCard struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StartTime string  `json:"start_time,omitempty"`
	Venue     string  `json:"venue,omitempty"`
	Fights    []Fight `json:"fights"`
}

// FormEntry is one recent result in a team's form list.
type FormEntry struct {
	Opponent string `json:"opponent"`
	Win      bool   `json:"win"`
	Score    string `json:"score"`
}

// TeamDetail is the assembled team view: profile plus roster, season stats,
// recent form, schedule, and standings context. Optional sections are nil
// when their upstream call failed.
type TeamDetail struct {
	Team       Team              `json:"team"`
	Roster     []Player          `json:"roster,omitempty"`
	Stats      map[string]string `json:"stats,omitempty"`
	RecentForm []FormEntry       `json:"recent_form,omitempty"`
	Schedule   []Game            `json:"schedule,omitempty"`
	Standings  []Standing        `json:"standings,omitempty"`
}

// Bracket is a pass-through tournament bracket payload.
type Bracket struct {
	Sport string          `json:"sport"`
	Data  json.RawMessage `json:"data"`
}
