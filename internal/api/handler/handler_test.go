package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/scorepulse/internal/cache"
	"github.com/albapepper/scorepulse/internal/config"
	"github.com/albapepper/scorepulse/internal/provider/espn"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestRouter wires a handler against an upstream stub with the real
// route tree shape.
func newTestRouter(upstream *httptest.Server) (*chi.Mux, *Handler) {
	client := espn.NewClient(6000, discard).WithBaseURLs(upstream.URL, upstream.URL)
	h := New(client, nil, cache.New(), cache.NewPlayerCache(), config.Load(), discard)

	r := chi.NewRouter()
	r.Get("/", h.Root)
	r.Get("/health", h.HealthCheck)
	r.Get("/health/cache", h.HealthCheckCache)
	r.Route("/api/v1/{sport}", func(r chi.Router) {
		r.Get("/games", h.GetGames)
		r.Get("/teams/{teamID}", h.GetTeamDetail)
		r.Get("/players/{playerID}", h.GetPlayerDetail)
		r.Get("/standings", h.GetStandings)
		r.Get("/leaders", h.GetLeaders)
		r.Get("/leaderboard", h.GetLeaderboard)
		r.Get("/bracket", h.GetBracket)
	})
	return r, h
}

func do(t *testing.T, router http.Handler, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode error body %q: %v", body, err)
	}
	return resp.Error.Code
}

const scoreboardStub = `{"events":[{
	"id": "1",
	"status": {"type": {"name": "STATUS_FINAL", "state": "post", "completed": true}},
	"competitions": [{"competitors": [
		{"homeAway": "home", "score": "100", "team": {"id": "1", "displayName": "Home"}},
		{"homeAway": "away", "score": "90", "team": {"id": "2", "displayName": "Away"}}
	]}]
}]}`

func TestGetGamesUnknownSport(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unknown sport must be rejected before any upstream call")
	}))
	defer upstream.Close()
	router, _ := newTestRouter(upstream)

	rec := do(t, router, "/api/v1/cricket/games", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if code := errorCode(t, rec.Body.Bytes()); code != "UNKNOWN_SPORT" {
		t.Errorf("code = %q", code)
	}
}

func TestGetGamesInvalidDate(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid date must be rejected before any upstream call")
	}))
	defer upstream.Close()
	router, _ := newTestRouter(upstream)

	for _, date := range []string{"2026-01-15", "tomorrow", "202601"} {
		rec := do(t, router, "/api/v1/nba/games?date="+date, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("date %q: status = %d, want 400", date, rec.Code)
		}
		if code := errorCode(t, rec.Body.Bytes()); code != "INVALID_DATE" {
			t.Errorf("date %q: code = %q", date, code)
		}
	}
}

func TestGetGamesCacheFlow(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(scoreboardStub))
	}))
	defer upstream.Close()
	router, _ := newTestRouter(upstream)

	first := do(t, router, "/api/v1/nba/games", nil)
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", first.Code, first.Body.Bytes())
	}
	if got := first.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("first X-Cache = %q", got)
	}
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("response missing ETag")
	}

	second := do(t, router, "/api/v1/nba/games", nil)
	if got := second.Header().Get("X-Cache"); got != "HIT" {
		t.Errorf("second X-Cache = %q", got)
	}
	if calls != 1 {
		t.Errorf("upstream calls = %d, want 1", calls)
	}

	notModified := do(t, router, "/api/v1/nba/games", map[string]string{"If-None-Match": etag})
	if notModified.Code != http.StatusNotModified {
		t.Errorf("conditional status = %d, want 304", notModified.Code)
	}

	var payload struct {
		Sport string `json:"sport"`
		Games []struct {
			Status string `json:"status"`
		} `json:"games"`
	}
	if err := json.Unmarshal(first.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Sport != "nba" || len(payload.Games) != 1 || payload.Games[0].Status != "final" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestGetGamesUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sad", http.StatusInternalServerError)
	}))
	defer upstream.Close()
	router, _ := newTestRouter(upstream)

	rec := do(t, router, "/api/v1/nba/games", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if code := errorCode(t, rec.Body.Bytes()); code != "UPSTREAM_ERROR" {
		t.Errorf("code = %q", code)
	}
}

func TestGetTeamDetailUnsupportedSport(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer upstream.Close()
	router, _ := newTestRouter(upstream)

	for _, sport := range []string{"golf", "f1", "ufc"} {
		rec := do(t, router, "/api/v1/"+sport+"/teams/1", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", sport, rec.Code)
		}
		if code := errorCode(t, rec.Body.Bytes()); code != "UNSUPPORTED" {
			t.Errorf("%s: code = %q", sport, code)
		}
	}
}

func TestGetTeamDetailNotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer upstream.Close()
	router, _ := newTestRouter(upstream)

	rec := do(t, router, "/api/v1/nba/teams/9999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if code := errorCode(t, rec.Body.Bytes()); code != "TEAM_NOT_FOUND" {
		t.Errorf("code = %q", code)
	}
}

func TestGetGamesGolfDateForwarded(t *testing.T) {
	// A dated golf request must pin the upstream fetch to that date,
	// since the response is cached under games:golf:<date>.
	var gotDates string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDates = r.URL.Query().Get("dates")
		w.Write([]byte(`{"events":[]}`))
	}))
	defer upstream.Close()
	router, _ := newTestRouter(upstream)

	rec := do(t, router, "/api/v1/golf/games?date=20260215", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if gotDates != "20260215" {
		t.Errorf("upstream dates param = %q, want 20260215", gotDates)
	}
}

func TestGetLeaderboardGolfOnly(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer upstream.Close()
	router, _ := newTestRouter(upstream)

	rec := do(t, router, "/api/v1/nba/leaderboard", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if code := errorCode(t, rec.Body.Bytes()); code != "UNSUPPORTED" {
		t.Errorf("code = %q", code)
	}
}

func TestRootListsSports(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer upstream.Close()
	router, _ := newTestRouter(upstream)

	rec := do(t, router, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload struct {
		Sports []string `json:"sports"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Sports) != 10 {
		t.Errorf("sports = %v", payload.Sports)
	}
}

func TestHealthEndpoints(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer upstream.Close()
	router, _ := newTestRouter(upstream)

	for _, target := range []string{"/health", "/health/cache"} {
		rec := do(t, router, target, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d", target, rec.Code)
		}
	}
}
