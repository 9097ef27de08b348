package cfbd

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/albapepper/scorepulse/internal/provider"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func floatPtr(f float64) *float64 { return &f }

func TestNewClientRequiresKey(t *testing.T) {
	if c := NewClient("", 30, discard); c != nil {
		t.Error("empty API key should disable the client")
	}
	if c := NewClient("key", 30, discard); c == nil {
		t.Error("client with key should construct")
	}
}

func TestGetLines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if r.URL.Path != "/lines" || r.URL.Query().Get("year") != "2026" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[
			{"id": 1, "homeTeam": "Georgia", "awayTeam": "Alabama",
			 "lines": [{"provider": "consensus", "spread": -3.5, "formattedSpread": "Georgia -3.5", "overUnder": 52.5}]}
		]`))
	}))
	defer srv.Close()

	c := NewClient("test-key", 600, discard).WithBaseURL(srv.URL)
	lines, err := c.GetLines(context.Background(), 2026, 0)
	if err != nil {
		t.Fatalf("GetLines() error = %v", err)
	}
	if len(lines) != 1 || lines[0].HomeTeam != "Georgia" {
		t.Errorf("lines = %+v", lines)
	}
}

func TestEnrichGames(t *testing.T) {
	games := []provider.Game{
		{Home: provider.Team{Name: "Georgia Bulldogs"}, Away: provider.Team{Name: "Alabama Crimson Tide"}},
		{Home: provider.Team{Name: "Unmatched Home"}, Away: provider.Team{Name: "Unmatched Away"}},
	}
	lines := []GameLines{
		{
			HomeTeam: "Georgia", AwayTeam: "Alabama",
			Lines: []Line{
				{Provider: "Bovada", Spread: floatPtr(-4), FormattedSpread: "Georgia -4", OverUnder: floatPtr(51.5)},
				{Provider: "consensus", Spread: floatPtr(-3.5), FormattedSpread: "Georgia -3.5", OverUnder: floatPtr(52.5)},
			},
		},
	}

	EnrichGames(games, lines)

	if games[0].Odds == nil {
		t.Fatal("matched game should carry odds")
	}
	// The consensus book wins over the first-listed sportsbook.
	if games[0].Odds.Provider != "consensus" || games[0].Odds.Spread != "Georgia -3.5" {
		t.Errorf("Odds = %+v", games[0].Odds)
	}
	if games[0].Odds.OverUnder == nil || *games[0].Odds.OverUnder != 52.5 {
		t.Errorf("OverUnder = %v", games[0].Odds.OverUnder)
	}
	if games[1].Odds != nil {
		t.Error("unmatched game should stay untouched")
	}
}

func TestEnrichGamesNoSpread(t *testing.T) {
	games := []provider.Game{
		{Home: provider.Team{Name: "Georgia"}, Away: provider.Team{Name: "Alabama"}},
	}
	lines := []GameLines{
		{HomeTeam: "Georgia", AwayTeam: "Alabama", Lines: []Line{{Provider: "consensus"}}},
	}
	EnrichGames(games, lines)
	if games[0].Odds != nil {
		t.Error("a line without a spread should not attach odds")
	}
}

func TestTeamNameMatches(t *testing.T) {
	tests := []struct {
		espn, cfbd string
		want       bool
	}{
		{"Georgia Bulldogs", "Georgia", true},
		{"Georgia", "Georgia Bulldogs", true},
		{"Georgia Bulldogs", "georgia", true},
		{"Georgia Tech", "Georgia State", false},
		{"", "Georgia", false},
		{"Georgia", "", false},
	}
	for _, tt := range tests {
		if got := teamNameMatches(tt.espn, tt.cfbd); got != tt.want {
			t.Errorf("teamNameMatches(%q, %q) = %v, want %v", tt.espn, tt.cfbd, got, tt.want)
		}
	}
}
