// Package sport defines the registry of supported sports and the mapping
// from a sport key to its upstream league path and transformer family.
//
// Adding a new sport means adding a registry entry and, if its upstream
// schema differs from every existing family, a new transformer family.
package sport

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknown is returned when a request names a sport that is not in the
// registry. It is checked before any network call is attempted.
var ErrUnknown = errors.New("unknown sport")

// Family selects which normalization transformer handles a sport's
// upstream payloads.
type Family string

const (
	FamilyBasketball Family = "basketball"
	FamilyFootball   Family = "football"
	FamilyBaseball   Family = "baseball"
	FamilyHockey     Family = "hockey"
	FamilySoccer     Family = "soccer"
	FamilyGolf       Family = "golf"
	FamilyRacing     Family = "racing"
	FamilyMMA        Family = "mma"
)

// Config describes one supported sport.
type Config struct {
	Key     string // request discriminator, e.g. "nba"
	Name    string // display name
	Path    string // ESPN league path, e.g. "basketball/nba"
	Family  Family
	Ranked  bool // poll-ranked: teams may carry an AP/coaches rank
	College bool // college sport: eligible for the secondary CFB provider
}

// Registry is the full set of supported sports, keyed by request key.
var Registry = map[string]Config{
	"nba":  {Key: "nba", Name: "NBA", Path: "basketball/nba", Family: FamilyBasketball},
	"mcbb": {Key: "mcbb", Name: "Men's College Basketball", Path: "basketball/mens-college-basketball", Family: FamilyBasketball, Ranked: true, College: true},
	"nfl":  {Key: "nfl", Name: "NFL", Path: "football/nfl", Family: FamilyFootball},
	"cfb":  {Key: "cfb", Name: "College Football", Path: "football/college-football", Family: FamilyFootball, Ranked: true, College: true},
	"mlb":  {Key: "mlb", Name: "MLB", Path: "baseball/mlb", Family: FamilyBaseball},
	"nhl":  {Key: "nhl", Name: "NHL", Path: "hockey/nhl", Family: FamilyHockey},
	"epl":  {Key: "epl", Name: "Premier League", Path: "soccer/eng.1", Family: FamilySoccer},
	"golf": {Key: "golf", Name: "Golf", Path: "golf/pga", Family: FamilyGolf},
	"f1":   {Key: "f1", Name: "Formula 1", Path: "racing/f1", Family: FamilyRacing},
	"ufc":  {Key: "ufc", Name: "UFC", Path: "mma/ufc", Family: FamilyMMA},
}

// Lookup resolves a sport key (case-insensitive) to its config.
func Lookup(key string) (Config, error) {
	cfg, ok := Registry[strings.ToLower(key)]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknown, key)
	}
	return cfg, nil
}

// Keys returns all registered sport keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(Registry))
	for k := range Registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
