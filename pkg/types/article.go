// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the airlit pipeline.
package types

import (
	"fmt"
	"strings"
	"time"
)

// Article is the normalized record for a scholarly publication, produced by
// a source adapter and consumed unchanged by the rest of the pipeline.
// Optional fields use their zero value when absent: a zero Date means the
// source reported no parseable publication date, and empty strings mean the
// field was missing upstream.
type Article struct {
	// Source identifies the bibliographic source (e.g. "PubMed", "Crossref").
	Source string `json:"source" yaml:"source"`

	// Identifier is the source-local ID (PMID or DOI). Unique within one
	// source's result set, not across sources.
	Identifier string `json:"identifier" yaml:"identifier"`

	// Title is the article title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Abstract is the article abstract, possibly empty.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Journal is the publication venue, empty when unknown.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Date is the publication date. Zero when the source gave none or the
	// value could not be parsed; missing month/day components default to 1.
	Date time.Time `json:"date,omitempty" yaml:"date,omitempty"`

	// Authors lists author display names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// DOI preserves the source's casing; comparisons are case-insensitive.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// URL is the canonical link for the article, empty when unknown.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// ShortCitation returns a one-line citation for the references list:
// up to three authors ("et al." appended when more exist, "Unknown" when
// none), the publication year or "n.d.", the title, and the journal when
// known.
func (a Article) ShortCitation() string {
	authors := a.Authors
	if len(authors) > 3 {
		authors = authors[:3]
	}
	authorPart := strings.Join(authors, ", ")
	if authorPart == "" {
		authorPart = "Unknown"
	}
	if len(a.Authors) > 3 {
		authorPart += " et al."
	}

	year := "n.d."
	if !a.Date.IsZero() {
		year = fmt.Sprintf("%d", a.Date.Year())
	}

	journalPart := ""
	if a.Journal != "" {
		journalPart = " " + a.Journal
	}

	return strings.TrimSpace(fmt.Sprintf("%s (%s). %s.%s", authorPart, year, a.Title, journalPart))
}
