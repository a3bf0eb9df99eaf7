// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/ZeyadKm/airlit/pkg/types"
)

// FormatTable writes articles as a human-readable table to w.
func FormatTable(articles []types.Article, w io.Writer) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-10s  %s\n",
		"N", "Title", "Authors", "Date", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 106))

	for i, a := range articles {
		title := a.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		date := ""
		if !a.Date.IsZero() {
			date = a.Date.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-10s  %s\n",
			i+1, title, formatAuthors(a.Authors), date, a.Source)
	}

	fmt.Fprintf(w, "\n%d articles\n", len(articles))
}

// FormatJSON writes articles as indented JSON to w.
func FormatJSON(articles []types.Article, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(articles)
}

// FormatYAML writes articles as a YAML list to w.
func FormatYAML(articles []types.Article, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(articles)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
