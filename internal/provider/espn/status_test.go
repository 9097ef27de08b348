package espn

import (
	"testing"

	"github.com/albapepper/scorepulse/internal/provider"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		name      string
		typeName  string
		state     string
		completed bool
		want      provider.GameStatus
	}{
		{"scheduled", "STATUS_SCHEDULED", "pre", false, provider.StatusScheduled},
		{"in progress", "STATUS_IN_PROGRESS", "in", false, provider.StatusInProgress},
		{"halftime", "STATUS_HALFTIME", "in", false, provider.StatusInProgress},
		{"final", "STATUS_FINAL", "post", false, provider.StatusFinal},
		{"final ot", "STATUS_FINAL_OT", "post", false, provider.StatusFinal},
		{"completed flag wins", "STATUS_IN_PROGRESS", "in", true, provider.StatusFinal},
		{"postponed maps to scheduled", "STATUS_POSTPONED", "pre", false, provider.StatusScheduled},
		{"rain delay maps to scheduled", "STATUS_RAIN_DELAY", "in", false, provider.StatusScheduled},
		{"unknown name falls to state", "STATUS_SOMETHING_NEW", "in", false, provider.StatusInProgress},
		{"unknown name post state", "STATUS_SOMETHING_NEW", "post", false, provider.StatusFinal},
		{"unknown everything defaults scheduled", "STATUS_MYSTERY", "weird", false, provider.StatusScheduled},
		{"empty input", "", "", false, provider.StatusScheduled},
		{"case insensitive name", "status_final", "", false, provider.StatusFinal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapStatus(tt.typeName, tt.state, tt.completed); got != tt.want {
				t.Errorf("MapStatus(%q, %q, %v) = %q, want %q", tt.typeName, tt.state, tt.completed, got, tt.want)
			}
		})
	}
}
