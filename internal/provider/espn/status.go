package espn

import (
	"strings"

	"github.com/albapepper/scorepulse/internal/provider"
)

// Status type names ESPN uses across sports. Anything not listed falls
// open to scheduled — showing a game as not-yet-started beats failing the
// whole response on an unmapped status.
var statusNameMap = map[string]provider.GameStatus{
	"STATUS_SCHEDULED":     provider.StatusScheduled,
	"STATUS_POSTPONED":     provider.StatusScheduled,
	"STATUS_DELAYED":       provider.StatusScheduled,
	"STATUS_RAIN_DELAY":    provider.StatusScheduled,
	"STATUS_IN_PROGRESS":   provider.StatusInProgress,
	"STATUS_HALFTIME":      provider.StatusInProgress,
	"STATUS_END_PERIOD":    provider.StatusInProgress,
	"STATUS_END_OF_HALF":   provider.StatusInProgress,
	"STATUS_FIRST_HALF":    provider.StatusInProgress,
	"STATUS_SECOND_HALF":   provider.StatusInProgress,
	"STATUS_OVERTIME":      provider.StatusInProgress,
	"STATUS_SHOOTOUT":      provider.StatusInProgress,
	"STATUS_FINAL":         provider.StatusFinal,
	"STATUS_FINAL_OT":      provider.StatusFinal,
	"STATUS_FULL_TIME":     provider.StatusFinal,
	"STATUS_FINAL_PEN":     provider.StatusFinal,
	"STATUS_PLAY_COMPLETE": provider.StatusFinal,
	"STATUS_FIGHTS_FINAL":  provider.StatusFinal,
	"STATUS_RACE_FINAL":    provider.StatusFinal,
}

var statusStateMap = map[string]provider.GameStatus{
	"pre":  provider.StatusScheduled,
	"in":   provider.StatusInProgress,
	"post": provider.StatusFinal,
}

// MapStatus translates an upstream status into the canonical set. The
// completed flag wins, then the exact type name, then the coarse state.
// Unknown inputs default to scheduled.
func MapStatus(name, state string, completed bool) provider.GameStatus {
	if completed {
		return provider.StatusFinal
	}
	if s, ok := statusNameMap[strings.ToUpper(name)]; ok {
		return s
	}
	if s, ok := statusStateMap[strings.ToLower(state)]; ok {
		return s
	}
	return provider.StatusScheduled
}
