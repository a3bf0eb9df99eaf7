// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package review synthesizes a themed narrative literature review with
// numbered citations from a deduplicated article list.
package review

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ZeyadKm/airlit/pkg/types"
)

// EmptyMessage is returned when no articles were supplied.
const EmptyMessage = "No recent air pollution studies were retrieved."

// Synthesize renders the literature review document. Articles are sorted
// newest first (dateless articles last), numbered 1..N in that order, and
// grouped by theme in first-encountered order. The function is pure: the
// input slice is not modified and the output depends only on it.
func Synthesize(articles []types.Article) string {
	list := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		if a.Identifier == "" && a.Title == "" {
			continue
		}
		list = append(list, a)
	}
	if len(list) == 0 {
		return EmptyMessage
	}

	// Stable so articles sharing a date keep their deduplicated order.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})

	var earliest, latest time.Time
	for _, a := range list {
		if a.Date.IsZero() {
			continue
		}
		if earliest.IsZero() || a.Date.Before(earliest) {
			earliest = a.Date
		}
		if latest.IsZero() || a.Date.After(latest) {
			latest = a.Date
		}
	}

	refs := make(map[string]int, len(list))
	for i, a := range list {
		refs[a.Identifier] = i + 1
	}

	groups := make(map[string][]types.Article)
	var themeOrder []string
	for _, a := range list {
		label := Classify(a)
		if _, ok := groups[label]; !ok {
			themeOrder = append(themeOrder, label)
		}
		groups[label] = append(groups[label], a)
	}

	lines := []string{"Literature Review: Recent Evidence on Air Pollution"}
	if !earliest.IsZero() && !latest.IsZero() {
		lines = append(lines, fmt.Sprintf(
			"This review synthesises %d peer-reviewed studies on air pollution published between %s and %s.",
			len(list), earliest.Format("2006-01-02"), latest.Format("2006-01-02")))
	} else {
		lines = append(lines, fmt.Sprintf(
			"This review synthesises %d peer-reviewed studies on air pollution published within the last week.",
			len(list)))
	}
	lines = append(lines,
		"The synthesis highlights methodological advances, emerging health evidence, and policy-relevant findings from multiple bibliographic sources, including PubMed and Crossref-indexed journals.")

	for _, label := range themeOrder {
		lines = append(lines, "", label)
		for _, a := range groups[label] {
			lines = append(lines, fmt.Sprintf("[%d] %s", refs[a.Identifier], Summarize(a)))
		}
	}

	lines = append(lines, "", "References")
	for _, a := range list {
		line := fmt.Sprintf("[%d] %s", refs[a.Identifier], a.ShortCitation())
		link := a.URL
		if link == "" && a.DOI != "" {
			link = "https://doi.org/" + a.DOI
		}
		if link != "" {
			line += " " + link
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
