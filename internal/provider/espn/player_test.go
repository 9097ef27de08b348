package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDeriveAge(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name string
		dob  string
		want *int
	}{
		{"display format", "1/15/1990", intPtr(36)},
		{"display format birthday not yet", "12/1/1990", intPtr(35)},
		{"iso date", "1990-01-15", intPtr(36)},
		{"iso timestamp", "1990-01-15T00:00Z", intPtr(36)},
		{"rfc3339", "1990-01-15T00:00:00Z", intPtr(36)},
		{"birthday today counts", "8/29/1990", intPtr(36)},
		{"empty", "", nil},
		{"garbage", "January 15th", nil},
		{"future date", "1/15/2030", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveAge(tt.dob, now)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("deriveAge(%q) = %d, want nil", tt.dob, *got)
			case tt.want != nil && got == nil:
				t.Errorf("deriveAge(%q) = nil, want %d", tt.dob, *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("deriveAge(%q) = %d, want %d", tt.dob, *got, *tt.want)
			}
		})
	}
}

func TestNormalizeAthleteAgeFromClock(t *testing.T) {
	// The derived age depends only on the injected clock, never the wall
	// clock: the same bio yields different ages on either side of the
	// birthday.
	cfg := mustSport(t, "nba")
	raw := athleteRaw{ID: "99", DisplayName: "Test Player", DisplayDOB: "3/1/1990"}

	h := New(NewClient(6000, discardLogger), cfg, discardLogger).
		WithClock(func() time.Time { return time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC) })
	p := h.normalizeAthlete(raw)
	if p.Age == nil || *p.Age != 35 {
		t.Fatalf("age before birthday = %v, want 35", p.Age)
	}

	h = New(NewClient(6000, discardLogger), cfg, discardLogger).
		WithClock(func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) })
	p = h.normalizeAthlete(raw)
	if p.Age == nil || *p.Age != 36 {
		t.Fatalf("age on birthday = %v, want 36", p.Age)
	}
}

func TestFootballStatPreferences(t *testing.T) {
	tests := []struct {
		position string
		want     string
	}{
		{"QB", "passing"},
		{"rb", "rushing"},
		{"WR", "receiving"},
		{"TE", "receiving"},
		{"K", "kicking"},
		{"LB", "defensive"},
		{"", "defensive"},
	}
	for _, tt := range tests {
		prefs := footballStatPreferences(tt.position)
		if len(prefs) == 0 || prefs[0] != tt.want {
			t.Errorf("footballStatPreferences(%q) = %v, want first %q", tt.position, prefs, tt.want)
		}
	}
}

const nhlBioFixture = `{"athlete": {
	"id": "3024816",
	"firstName": "Test",
	"lastName": "Skater",
	"fullName": "Test Skater",
	"jersey": "97",
	"position": {"abbreviation": "C"},
	"displayHeight": "6' 1\"",
	"displayWeight": "193 lbs",
	"dateOfBirth": "1997-01-28",
	"birthPlace": {"city": "Somewhere", "country": "Canada"},
	"team": {"id": "22", "displayName": "Test Club", "abbreviation": "TST"}
}}`

func TestPlayerDetailStatsDegrade(t *testing.T) {
	// Bio up, stats down: the profile still assembles with no stat grid.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/hockey/nhl/athletes/3024816":
			w.Write([]byte(nhlBioFixture))
		case "/hockey/nhl/athletes/3024816/stats":
			http.Error(w, "upstream sad", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	h := newTestHandler(t, srv, "nhl")
	p, err := h.PlayerDetail(context.Background(), "3024816")
	if err != nil {
		t.Fatalf("PlayerDetail() error = %v", err)
	}

	if p.FullName != "Test Skater" || p.Position != "C" {
		t.Errorf("bio fields = %q/%q", p.FullName, p.Position)
	}
	if p.Nationality != "Canada" {
		t.Errorf("Nationality = %q", p.Nationality)
	}
	if p.Age == nil {
		t.Error("age should derive from dateOfBirth")
	}
	if p.CurrentStats != nil {
		t.Errorf("CurrentStats = %v, want nil when stats endpoint fails", p.CurrentStats)
	}
	if p.Team == nil || p.Team.Abbreviation != "TST" {
		t.Errorf("Team = %+v", p.Team)
	}
}

func TestPlayerDetailWithStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/hockey/nhl/athletes/3024816":
			w.Write([]byte(nhlBioFixture))
		case "/hockey/nhl/athletes/3024816/stats":
			w.Write([]byte(`{"categories": [
				{"name": "skating", "labels": ["G", "A", "P"], "values": [42, 58, 100]}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	h := newTestHandler(t, srv, "nhl")
	p, err := h.PlayerDetail(context.Background(), "3024816")
	if err != nil {
		t.Fatalf("PlayerDetail() error = %v", err)
	}
	if p.CurrentStats["G"] != "42" || p.CurrentStats["P"] != "100" {
		t.Errorf("CurrentStats = %v", p.CurrentStats)
	}
	if len(p.StatLabels) != 3 || p.StatLabels[0] != "G" {
		t.Errorf("StatLabels = %v", p.StatLabels)
	}
}

func TestPlayerDetailBioMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	h := newTestHandler(t, srv, "nhl")
	_, err := h.PlayerDetail(context.Background(), "0")
	if err == nil {
		t.Fatal("missing bio must fail the detail")
	}
	if !IsNotFound(err) {
		t.Errorf("error %v should report not-found", err)
	}
}

func TestPlayerDetailGarbledBio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	h := newTestHandler(t, srv, "nhl")
	_, err := h.PlayerDetail(context.Background(), "1")
	if err == nil {
		t.Fatal("garbled bio must fail the detail")
	}
	if !IsNotFound(err) {
		t.Errorf("garbled bio should look like a missing player, got %v", err)
	}
}
