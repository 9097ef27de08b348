package espn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/albapepper/scorepulse/internal/provider"
)

// holes renders n hole linescores for a round fixture.
func holes(n int) string {
	out := "["
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += `{"value":4}`
	}
	return out + "]"
}

func decodeCompetitors(t *testing.T, payload string) []golfCompetitorRaw {
	t.Helper()
	var competitors []golfCompetitorRaw
	if err := json.Unmarshal([]byte(payload), &competitors); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return competitors
}

func TestLeaderboardDateForwarded(t *testing.T) {
	var gotDates string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDates = r.URL.Query().Get("dates")
		w.Write([]byte(`{"events":[]}`))
	}))
	defer srv.Close()
	h := newTestHandler(t, srv, "golf")

	if _, err := h.Leaderboard(context.Background(), "", "20260215"); err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if gotDates != "20260215" {
		t.Errorf("dates param = %q, want 20260215", gotDates)
	}

	if _, err := h.Leaderboard(context.Background(), "", ""); err != nil {
		t.Fatalf("Leaderboard without date: %v", err)
	}
	if gotDates != "" {
		t.Errorf("dates param = %q, want empty when no date given", gotDates)
	}
}

func TestSortGolfEntries(t *testing.T) {
	entries := []provider.LeaderboardEntry{
		{PlayerName: "Cut A", Position: "CUT"},
		{PlayerName: "Third", Position: "3"},
		{PlayerName: "Tied Second", Position: "T2"},
		{PlayerName: "First", Position: "1"},
		{PlayerName: "Withdrew", Position: "WD"},
	}
	sortGolfEntries(entries)

	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Position
	}
	// Numeric ascending first; non-numeric keep upstream relative order.
	want := []string{"1", "3", "CUT", "T2", "WD"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestCurrentRound(t *testing.T) {
	competitors := decodeCompetitors(t, `[
		{"athlete":{"id":"1","displayName":"Leader"},
		 "linescores":[{"displayValue":"68","linescores":`+holes(18)+`},
		               {"displayValue":"70","linescores":`+holes(18)+`},
		               {"displayValue":"-2","linescores":`+holes(7)+`}]},
		{"athlete":{"id":"2","displayName":"Chaser"},
		 "linescores":[{"displayValue":"69","linescores":`+holes(18)+`},
		               {"displayValue":"71","linescores":`+holes(18)+`}]}
	]`)
	if got := currentRound(competitors); got != 3 {
		t.Errorf("currentRound = %d, want 3", got)
	}
	if got := currentRound(nil); got != 0 {
		t.Errorf("currentRound(nil) = %d, want 0", got)
	}
}

func TestThruDisplay(t *testing.T) {
	tests := []struct {
		name  string
		comp  string
		round int
		want  string
	}{
		{"mid round", `{"linescores":[{"displayValue":"-2","linescores":` + holes(7) + `}]}`, 1, "7"},
		{"full round shows F", `{"linescores":[{"displayValue":"68","linescores":` + holes(18) + `}]}`, 1, "F"},
		{"no holes yet", `{"linescores":[{"displayValue":""}]}`, 1, ""},
		{"round beyond linescores", `{"linescores":[{"displayValue":"68","linescores":` + holes(18) + `}]}`, 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c golfCompetitorRaw
			if err := json.Unmarshal([]byte(tt.comp), &c); err != nil {
				t.Fatalf("decode fixture: %v", err)
			}
			if got := thruDisplay(c, tt.round); got != tt.want {
				t.Errorf("thruDisplay = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransformGolfLeaderboard(t *testing.T) {
	competitors := decodeCompetitors(t, `[
		{"athlete":{"id":"10","displayName":"Second Player"},
		 "status":{"position":{"displayName":"2"}},
		 "score":"-5",
		 "linescores":[{"displayValue":"68","linescores":`+holes(18)+`},
		               {"displayValue":"-1","linescores":`+holes(5)+`}]},
		{"athlete":{"id":"11","displayName":"First Player"},
		 "status":{"position":{"displayName":"1"}},
		 "score":"-8",
		 "linescores":[{"displayValue":"66","linescores":`+holes(18)+`},
		               {"displayValue":"-3","linescores":`+holes(18)+`}]},
		{"id":"12"}
	]`)

	entries := transformGolfLeaderboard(competitors)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (athlete-less row dropped)", len(entries))
	}
	if entries[0].PlayerName != "First Player" || entries[0].Score != "-8" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	// Round 2 is current: today comes from its display value, thru from its holes.
	if entries[0].Today != "-3" || entries[0].Thru != "F" {
		t.Errorf("leader today/thru = %q/%q, want -3/F", entries[0].Today, entries[0].Thru)
	}
	if entries[1].Thru != "5" {
		t.Errorf("chaser thru = %q, want 5", entries[1].Thru)
	}
}
