// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"strings"

	"github.com/ZeyadKm/airlit/pkg/types"
)

// FallbackTheme labels articles that match no theme keyword.
const FallbackTheme = "Cross-cutting insights"

// themes pairs each theme label with its keyword substrings, in scoring
// order. The order matters: ties keep the earlier theme, so the table is a
// slice rather than a map.
var themes = []struct {
	label    string
	keywords []string
}{
	{"Health impacts", []string{
		"mortality",
		"morbidity",
		"cardio",
		"respir",
		"asthma",
		"hospital",
		"birth",
		"pregnan",
		"cancer",
		"disease",
		"inflammation",
	}},
	{"Exposure assessment", []string{
		"exposure",
		"monitor",
		"model",
		"satellite",
		"sensor",
		"measurement",
		"remote",
		"spatial",
		"pm2.5",
		"pm10",
		"no2",
	}},
	{"Sources and chemistry", []string{
		"source",
		"emission",
		"chemical",
		"composition",
		"secondary",
		"ozone",
		"aerosol",
	}},
	{"Policy and mitigation", []string{
		"policy",
		"mitigation",
		"intervention",
		"regulation",
		"management",
		"control",
		"urban planning",
	}},
}

// Classify assigns the article to the theme whose keywords occur most often
// in the lowercased title and abstract. Each keyword counts at most once
// regardless of repetition. A later theme replaces the current best only on
// a strictly greater score; a zero best score yields the fallback theme.
func Classify(a types.Article) string {
	text := strings.ToLower(a.Title) + " " + strings.ToLower(a.Abstract)

	best := FallbackTheme
	bestScore := 0
	for _, th := range themes {
		score := 0
		for _, kw := range th.keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = th.label
		}
	}
	return best
}
