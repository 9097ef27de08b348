package cfbd

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/albapepper/scorepulse/internal/provider"
)

// GameLines is one game's betting lines in the CFBD response shape.
type GameLines struct {
	ID       int    `json:"id"`
	Season   int    `json:"season"`
	Week     int    `json:"week"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Lines    []Line `json:"lines"`
}

// Line is one sportsbook's numbers for a game.
type Line struct {
	Provider        string   `json:"provider"`
	Spread          *float64 `json:"spread"`
	FormattedSpread string   `json:"formattedSpread"`
	OverUnder       *float64 `json:"overUnder"`
}

// GetLines fetches betting lines for a season year (current week when
// week is zero).
func (c *Client) GetLines(ctx context.Context, year, week int) ([]GameLines, error) {
	params := url.Values{"year": {strconv.Itoa(year)}}
	if week > 0 {
		params.Set("week", strconv.Itoa(week))
	}
	var lines []GameLines
	if err := c.get(ctx, "/lines", params, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// EnrichGames attaches a consensus line to each game it can match by team
// names. CFBD keys games by school name, ESPN by display name, so matching
// is a case-insensitive containment check in both directions. Unmatched
// games are left untouched.
func EnrichGames(games []provider.Game, lines []GameLines) {
	for i := range games {
		gl, ok := matchLines(games[i], lines)
		if !ok {
			continue
		}
		line, ok := consensusLine(gl.Lines)
		if !ok {
			continue
		}
		games[i].Odds = &provider.GameOdds{
			Provider:  line.Provider,
			Spread:    line.FormattedSpread,
			OverUnder: line.OverUnder,
		}
	}
}

func matchLines(game provider.Game, lines []GameLines) (GameLines, bool) {
	for _, gl := range lines {
		if teamNameMatches(game.Home.Name, gl.HomeTeam) && teamNameMatches(game.Away.Name, gl.AwayTeam) {
			return gl, true
		}
	}
	return GameLines{}, false
}

func teamNameMatches(espnName, cfbdName string) bool {
	a := strings.ToLower(strings.TrimSpace(espnName))
	b := strings.ToLower(strings.TrimSpace(cfbdName))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// consensusLine prefers the consensus book, falling back to the first line
// carrying a spread.
func consensusLine(lines []Line) (Line, bool) {
	for _, l := range lines {
		if strings.EqualFold(l.Provider, "consensus") && l.Spread != nil {
			return l, true
		}
	}
	for _, l := range lines {
		if l.Spread != nil {
			return l, true
		}
	}
	return Line{}, false
}
