package espn

import (
	"strings"

	"github.com/albapepper/scorepulse/internal/provider"
)

func displayValue(v interface{}) string {
	return provider.ExtractString(v)
}

// statCategory is one upstream stat category (e.g. "batting", "pitching",
// "perGame") with its labels and values in display order.
type statCategory struct {
	Name   string        `json:"name"`
	Labels []string      `json:"labels"`
	Names  []string      `json:"names"`
	Values []interface{} `json:"values"`
	Stats  []struct {
		Name         string      `json:"name"`
		Abbreviation string      `json:"abbreviation"`
		DisplayName  string      `json:"displayName"`
		Value        interface{} `json:"value"`
		DisplayValue string      `json:"displayValue"`
	} `json:"stats"`
}

// pickCategory selects the stat category matching any of the preferred
// keywords (case-insensitive substring match, in priority order), falling
// back to the first category when nothing matches. Returning the fallback
// instead of nil is deliberate: a player with any stats at all should never
// render an empty grid. Returns nil only when categories is empty.
func pickCategory(categories []statCategory, preferred ...string) *statCategory {
	for _, want := range preferred {
		want = strings.ToLower(want)
		for i := range categories {
			if strings.Contains(strings.ToLower(categories[i].Name), want) {
				return &categories[i]
			}
		}
	}
	if len(categories) > 0 {
		return &categories[0]
	}
	return nil
}

// categoryStats flattens a category into an ordered label list and a
// label→display-value map, optionally prefixing every label.
func categoryStats(cat *statCategory, prefix string) (labels []string, stats map[string]string) {
	if cat == nil {
		return nil, nil
	}
	stats = make(map[string]string)

	// Newer endpoints use the stats array; older ones parallel label/value
	// slices. Support both.
	if len(cat.Stats) > 0 {
		for _, s := range cat.Stats {
			label := s.Abbreviation
			if label == "" {
				label = s.Name
			}
			label = prefix + label
			val := s.DisplayValue
			if val == "" {
				val = displayValue(s.Value)
			}
			labels = append(labels, label)
			stats[label] = val
		}
		return labels, stats
	}

	names := cat.Labels
	if len(names) == 0 {
		names = cat.Names
	}
	for i, name := range names {
		if i >= len(cat.Values) {
			break
		}
		label := prefix + name
		labels = append(labels, label)
		stats[label] = displayValue(cat.Values[i])
	}
	return labels, stats
}
