package espn

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/albapepper/scorepulse/internal/sport"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func mustSport(t *testing.T, key string) sport.Config {
	t.Helper()
	cfg, err := sport.Lookup(key)
	if err != nil {
		t.Fatalf("lookup %q: %v", key, err)
	}
	return cfg
}

// newTestHandler points a sport handler at a local test server for both
// API hosts.
func newTestHandler(t *testing.T, srv *httptest.Server, sportKey string) *Handler {
	t.Helper()
	cfg, err := sport.Lookup(sportKey)
	if err != nil {
		t.Fatalf("lookup %q: %v", sportKey, err)
	}
	client := NewClient(6000, discardLogger).WithBaseURLs(srv.URL, srv.URL)
	return New(client, cfg, discardLogger)
}
