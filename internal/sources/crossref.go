// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZeyadKm/airlit/internal/httputil"
	"github.com/ZeyadKm/airlit/pkg/types"
)

// crossrefAPIBase is the Crossref works endpoint. Declared as a var so
// tests can substitute an httptest server.
var crossrefAPIBase = "https://api.crossref.org/works"

// relevanceKeywords filters Crossref results: the works search matches
// loosely, so an item is kept only when its title, abstract, or subject
// terms mention at least one of these.
var relevanceKeywords = []string{
	"air pollution",
	"air-quality",
	"air quality",
	"particulate",
	"pm2.5",
	"pm10",
	"nitrogen dioxide",
	"no2",
	"sulfur dioxide",
	"so2",
	"ozone",
	"black carbon",
	"smog",
	"smoke",
	"aerosol",
	"emission",
}

// CrossrefSource queries the Crossref REST API for recently indexed
// journal articles about air pollution.
type CrossrefSource struct {
	Client *http.Client

	// now stubs time.Now for tests; the publication window filter is
	// computed relative to it.
	now func() time.Time
}

// Name returns the source identifier.
func (s *CrossrefSource) Name() string { return "Crossref" }

// Fetch retrieves recent articles from Crossref.
func (s *CrossrefSource) Fetch(ctx context.Context, cfg types.FetchConfig) ([]types.Article, error) {
	days := cfg.Days
	if days <= 0 {
		days = 7
	}
	rows := cfg.MaxCrossref
	if rows <= 0 {
		rows = 8
	}

	nowFn := s.now
	if nowFn == nil {
		nowFn = time.Now
	}
	today := nowFn().UTC()
	start := today.AddDate(0, 0, -days)

	params := url.Values{
		"query": {"air pollution"},
		"filter": {fmt.Sprintf("from-pub-date:%s,until-pub-date:%s,type:journal-article",
			start.Format("2006-01-02"), today.Format("2006-01-02"))},
		"sort":  {"published"},
		"order": {"desc"},
		"rows":  {fmt.Sprintf("%d", rows)},
	}

	var wr crossrefWorksResponse
	if err := httputil.GetJSON(ctx, s.Client, crossrefAPIBase+"?"+params.Encode(), cfg.UserAgent, &wr); err != nil {
		return nil, fmt.Errorf("Crossref query: %w", err)
	}

	var articles []types.Article
	for idx, item := range wr.Message.Items {
		if a, ok := mapCrossrefItem(item, idx); ok {
			articles = append(articles, a)
		}
	}
	return articles, nil
}

// mapCrossrefItem converts one Crossref work into the normalized Article
// shape. Items with no relevance keyword in their text are dropped.
func mapCrossrefItem(item crossrefItem, idx int) (types.Article, bool) {
	title := strings.Join(item.Title, "; ")
	if title == "" {
		title = "Untitled"
	}

	journal := ""
	if len(item.ContainerTitle) > 0 {
		journal = strings.TrimSpace(item.ContainerTitle[0])
	}

	abstract := stripCrossrefAbstract(item.Abstract)

	blob := strings.ToLower(title + " " + abstract + " " + strings.Join(item.Subject, " "))
	if !containsAny(blob, relevanceKeywords) {
		return types.Article{}, false
	}

	identifier := item.DOI
	if identifier == "" {
		identifier = fmt.Sprintf("crossref-%d", idx)
	}

	link := item.URL
	if link == "" && item.DOI != "" {
		link = "https://doi.org/" + item.DOI
	}

	var authors []string
	for _, a := range item.Author {
		given := strings.TrimSpace(a.Given)
		family := strings.TrimSpace(a.Family)
		switch {
		case given != "" && family != "":
			authors = append(authors, family+" "+given)
		case family != "":
			authors = append(authors, family)
		case given != "":
			authors = append(authors, given)
		}
	}

	return types.Article{
		Source:     "Crossref",
		Identifier: identifier,
		Title:      strings.TrimSpace(title),
		Abstract:   abstract,
		Journal:    journal,
		Date:       crossrefIssuedDate(item.Issued),
		Authors:    authors,
		DOI:        item.DOI,
		URL:        link,
	}, true
}

// crossrefIssuedDate converts an issued date-parts array to a date, padding
// missing month/day components with 1. Invalid parts yield a zero time.
func crossrefIssuedDate(issued crossrefDate) time.Time {
	if len(issued.DateParts) == 0 || len(issued.DateParts[0]) == 0 {
		return time.Time{}
	}
	parts := issued.DateParts[0]
	for len(parts) < 3 {
		parts = append(parts, 1)
	}
	year, month, day := parts[0], parts[1], parts[2]
	if year <= 0 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (e.g. Feb 30); reject those.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}
	}
	return t
}

// stripCrossrefAbstract removes the JATS/HTML markup Crossref abstracts may
// carry, returning the plain text. When the fragment is not parseable XML a
// basic tag replacement is applied instead.
func stripCrossrefAbstract(raw string) string {
	if raw == "" {
		return ""
	}

	if text, err := xmlText(raw); err == nil {
		return text
	}

	replacer := strings.NewReplacer(
		"<jats:p>", " ",
		"</jats:p>", " ",
		"<p>", " ",
		"</p>", " ",
		"\n", " ",
	)
	return strings.TrimSpace(replacer.Replace(raw))
}

// xmlText concatenates the character data of an XML fragment.
func xmlText(fragment string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader("<root>" + fragment + "</root>"))
	var parts []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if cd, ok := tok.(xml.CharData); ok {
			if s := strings.TrimSpace(string(cd)); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, " "), nil
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Crossref API JSON structures.
type crossrefWorksResponse struct {
	Message crossrefMessage `json:"message"`
}

type crossrefMessage struct {
	Items []crossrefItem `json:"items"`
}

type crossrefItem struct {
	DOI            string           `json:"DOI"`
	URL            string           `json:"URL"`
	Title          []string         `json:"title"`
	ContainerTitle []string         `json:"container-title"`
	Abstract       string           `json:"abstract"`
	Subject        []string         `json:"subject"`
	Author         []crossrefAuthor `json:"author"`
	Issued         crossrefDate     `json:"issued"`
}

type crossrefAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type crossrefDate struct {
	DateParts [][]int `json:"date-parts"`
}
