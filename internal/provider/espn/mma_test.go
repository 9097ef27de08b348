package espn

import (
	"encoding/json"
	"testing"

	"github.com/albapepper/scorepulse/internal/provider"
)

func TestParseResultType(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		want   string
	}{
		{"ko passes through", "Final - Result - KO/TKO", "KO/TKO"},
		{"unanimous decision abbreviated", "Result - Unanimous Decision", "UD"},
		{"split decision abbreviated", "Result - Split Decision", "SD"},
		{"majority decision abbreviated", "Result - Majority Decision", "MD"},
		{"technical decision abbreviated", "Result - Technical Decision", "TD"},
		{"submission abbreviated", "Result - Submission", "SUB"},
		{"unknown finish passes verbatim", "Result - Doctor Stoppage", "Doctor Stoppage"},
		{"no result marker", "Final", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseResultType(tt.detail); got != tt.want {
				t.Errorf("ParseResultType(%q) = %q, want %q", tt.detail, got, tt.want)
			}
		})
	}
}

func decodeBout(t *testing.T, payload string) mmaCompetitionRaw {
	t.Helper()
	var comp mmaCompetitionRaw
	if err := json.Unmarshal([]byte(payload), &comp); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return comp
}

func TestTransformFight(t *testing.T) {
	comp := decodeBout(t, `{
		"id": "401",
		"status": {"type": {"name": "STATUS_FINAL", "state": "post", "completed": true,
			"detail": "Final - Result - Submission", "shortDetail": "Final"}},
		"type": {"text": "Lightweight"},
		"competitors": [
			{"winner": true, "athlete": {"id": "a", "displayName": "Fighter A"},
			 "records": [{"summary": "24-1-0"}]},
			{"winner": false, "athlete": {"id": "b", "displayName": "Fighter B"},
			 "records": [{"summary": "19-4-0"}]}
		]
	}`)

	fight, err := transformFight(comp)
	if err != nil {
		t.Fatalf("transformFight() error = %v", err)
	}
	if fight.Status != provider.StatusFinal {
		t.Errorf("Status = %q", fight.Status)
	}
	if fight.ResultType != "SUB" {
		t.Errorf("ResultType = %q, want SUB", fight.ResultType)
	}
	if fight.WeightClass != "Lightweight" {
		t.Errorf("WeightClass = %q", fight.WeightClass)
	}
	if len(fight.Fighters) != 2 || !fight.Fighters[0].Winner || fight.Fighters[1].Winner {
		t.Errorf("Fighters = %+v", fight.Fighters)
	}
	if fight.Fighters[0].Record != "24-1-0" {
		t.Errorf("Record = %q", fight.Fighters[0].Record)
	}
}

func TestTransformFightScheduledHasNoResult(t *testing.T) {
	comp := decodeBout(t, `{
		"id": "402",
		"status": {"type": {"name": "STATUS_SCHEDULED", "state": "pre",
			"detail": "Sat, August 29th at 10:00 PM EDT"}},
		"competitors": [
			{"athlete": {"id": "a", "displayName": "Fighter A"}},
			{"athlete": {"id": "b", "displayName": "Fighter B"}}
		]
	}`)

	fight, err := transformFight(comp)
	if err != nil {
		t.Fatalf("transformFight() error = %v", err)
	}
	if fight.Status != provider.StatusScheduled {
		t.Errorf("Status = %q", fight.Status)
	}
	if fight.ResultType != "" {
		t.Errorf("scheduled bout should carry no result, got %q", fight.ResultType)
	}
}

func TestTransformFightTooFewFighters(t *testing.T) {
	comp := decodeBout(t, `{
		"id": "403",
		"competitors": [{"athlete": {"id": "a", "displayName": "Lone Fighter"}}]
	}`)

	if _, err := transformFight(comp); err == nil {
		t.Fatal("bout with one fighter should error")
	}
}
