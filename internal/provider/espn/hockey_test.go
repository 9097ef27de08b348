package espn

import (
	"testing"

	"github.com/albapepper/scorepulse/internal/provider"
)

func TestApplyHockeyStats(t *testing.T) {
	categories := []statCategory{
		namedCategory("skating", "G", "42", "A", "58"),
		namedCategory("goaltending", "SV%", ".918", "GAA", "2.41"),
	}

	t.Run("skater", func(t *testing.T) {
		p := &provider.Player{Position: "C"}
		applyHockeyStats(p, categories)
		if p.CurrentStats["G"] != "42" {
			t.Errorf("CurrentStats = %v", p.CurrentStats)
		}
		if _, hasGoalie := p.CurrentStats["SV%"]; hasGoalie {
			t.Error("skater should not carry goaltending stats")
		}
	})

	t.Run("goalie", func(t *testing.T) {
		p := &provider.Player{Position: "G"}
		applyHockeyStats(p, categories)
		if p.CurrentStats["SV%"] != ".918" {
			t.Errorf("CurrentStats = %v", p.CurrentStats)
		}
	})

	t.Run("goalie without goaltending category falls back", func(t *testing.T) {
		p := &provider.Player{Position: "G"}
		applyHockeyStats(p, categories[:1])
		if p.CurrentStats["G"] != "42" {
			t.Errorf("fallback grid missing: %v", p.CurrentStats)
		}
	})
}

func TestIsGoalie(t *testing.T) {
	for pos, want := range map[string]bool{
		"G": true, "Goalie": true, "GOALTENDER": true,
		"C": false, "D": false, "": false,
	} {
		if got := isGoalie(pos); got != want {
			t.Errorf("isGoalie(%q) = %v, want %v", pos, got, want)
		}
	}
}
