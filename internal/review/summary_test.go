// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"reflect"
	"testing"
	"time"

	"github.com/ZeyadKm/airlit/pkg/types"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		article types.Article
		want    string
	}{
		{
			"first two sentences with details",
			types.Article{
				Title:    "Asthma admissions",
				Abstract: "Levels of PM2.5 rose sharply. This increase correlates with hospital admissions. Further study is needed.",
				Journal:  "Lancet",
				Date:     time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
				DOI:      "10.1/abc",
			},
			"Levels of PM2.5 rose sharply. This increase correlates with hospital admissions Key details: journal=Lancet; date=2024-05-10; doi=10.1/abc",
		},
		{
			"single sentence",
			types.Article{
				Title:    "Urban governance",
				Abstract: "Policy instruments matter.",
			},
			"Policy instruments matter Key details:",
		},
		{
			"empty abstract placeholder",
			types.Article{
				Title:   "Emission inventories",
				Journal: "Atmos Env",
				Date:    time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
				DOI:     "10.2/xyz",
			},
			"Emission inventories discusses air pollution dynamics but no abstract was available Key details: journal=Atmos Env; date=2024-05-12; doi=10.2/xyz",
		},
		{
			"whitespace-only abstract placeholder",
			types.Article{Title: "Silent study", Abstract: "   \n\t "},
			"Silent study discusses air pollution dynamics but no abstract was available Key details:",
		},
		{
			"partial details",
			types.Article{
				Title:    "Smog trends",
				Abstract: "Winter smog worsened.",
				DOI:      "10.3/def",
			},
			"Winter smog worsened Key details: doi=10.3/def",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.article); got != tt.want {
				t.Errorf("Summarize = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \n ", nil},
		{"single sentence", "Ozone rose.", []string{"Ozone rose."}},
		{
			"two sentences",
			"Ozone rose. Levels fell later.",
			[]string{"Ozone rose.", "Levels fell later."},
		},
		{
			"question and exclamation",
			"Did ozone rise? Yes! Dramatically so.",
			[]string{"Did ozone rise?", "Yes!", "Dramatically so."},
		},
		{
			"digit starts next sentence",
			"Sampling ran for a year. 12 sites were used.",
			[]string{"Sampling ran for a year.", "12 sites were used."},
		},
		{
			"lowercase continuation not split",
			"Concentrations (approx. half) declined.",
			[]string{"Concentrations (approx. half) declined."},
		},
		{
			"decimal not split",
			"PM2.5 rose by 1.5 percent.",
			[]string{"PM2.5 rose by 1.5 percent."},
		},
		{
			"internal whitespace collapsed",
			"First  part.\nSecond part.",
			[]string{"First part.", "Second part."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitSentences(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
