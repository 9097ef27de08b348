package espn

import (
	"strings"

	"github.com/albapepper/scorepulse/internal/provider"
)

// TwoWayPrefix namespaces pitching stats when they are merged into a
// position player's stat map.
const TwoWayPrefix = "P_"

// applyBaseballStats picks between batting and pitching categories by
// role. A two-way player (both categories present, not a pure pitcher)
// gets pitching merged into the same flat map under P_-prefixed labels —
// the display layer renders one grid, not two.
func applyBaseballStats(p *provider.Player, categories []statCategory) {
	batting := pickCategory(categories, "batting", "hitting")
	pitching := pickCategory(categories, "pitching")
	if batting != nil && batting == pitching {
		// pickCategory fell back to the same first category for both;
		// treat it as whatever the role implies.
		if isPitcher(p.Position) {
			batting = nil
		} else {
			pitching = nil
		}
	}

	switch {
	case batting == nil && pitching == nil:
		applyFlatStats(p, pickCategory(categories))
		return
	case batting == nil:
		applyFlatStats(p, pitching)
		return
	case pitching == nil || isPitcher(p.Position):
		if isPitcher(p.Position) && pitching != nil {
			applyFlatStats(p, pitching)
		} else {
			applyFlatStats(p, batting)
		}
		return
	}

	// Two-way: batting is primary, pitching rides along prefixed.
	labels, stats := categoryStats(batting, "")
	pLabels, pStats := categoryStats(pitching, TwoWayPrefix)
	labels = append(labels, pLabels...)
	for k, v := range pStats {
		stats[k] = v
	}
	p.StatLabels = labels
	p.CurrentStats = stats
}

func isPitcher(position string) bool {
	switch strings.ToUpper(position) {
	case "P", "SP", "RP", "CP", "PITCHER":
		return true
	}
	return false
}
