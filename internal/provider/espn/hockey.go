package espn

import (
	"strings"

	"github.com/albapepper/scorepulse/internal/provider"
)

// applyHockeyStats prefers the goaltending category for goalies and the
// skating category for everyone else, falling back to whatever exists —
// never an empty grid when any category is present.
func applyHockeyStats(p *provider.Player, categories []statCategory) {
	if isGoalie(p.Position) {
		applyFlatStats(p, pickCategory(categories, "goaltending", "goalie"))
		return
	}
	applyFlatStats(p, pickCategory(categories, "skating", "scoring", "offensive"))
}

func isGoalie(position string) bool {
	switch strings.ToUpper(position) {
	case "G", "GOALIE", "GOALTENDER":
		return true
	}
	return false
}
