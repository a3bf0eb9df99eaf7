// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZeyadKm/airlit/internal/httputil"
	"github.com/ZeyadKm/airlit/pkg/types"
)

// PubMed E-utilities endpoints. Declared as vars so tests can substitute
// an httptest server.
var (
	pubmedSearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	pubmedFetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

const pubmedTool = "airlit"

// PubMedSource queries the NCBI E-utilities API for recent air pollution
// publications. Retrieval is two-phase: esearch returns matching PMIDs,
// efetch returns the full article XML for those PMIDs.
type PubMedSource struct {
	Client *http.Client
}

// Name returns the source identifier.
func (s *PubMedSource) Name() string { return "PubMed" }

// Fetch retrieves recent articles from PubMed.
func (s *PubMedSource) Fetch(ctx context.Context, cfg types.FetchConfig) ([]types.Article, error) {
	days := cfg.Days
	if days <= 0 {
		days = 7
	}
	retmax := cfg.MaxPubMed
	if retmax <= 0 {
		retmax = 8
	}
	contact := contactOrDefault(cfg)

	params := url.Values{
		"db":       {"pubmed"},
		"term":     {"air pollution"},
		"reldate":  {fmt.Sprintf("%d", days)},
		"datetype": {"pdat"},
		"retmax":   {fmt.Sprintf("%d", retmax)},
		"retmode":  {"json"},
		"sort":     {"pub+date"},
		"tool":     {pubmedTool},
		"email":    {contact},
	}

	var sr pubmedSearchResponse
	if err := httputil.GetJSON(ctx, s.Client, pubmedSearchBase+"?"+params.Encode(), cfg.UserAgent, &sr); err != nil {
		return nil, fmt.Errorf("PubMed search: %w", err)
	}
	if len(sr.Result.IDList) == 0 {
		return nil, nil
	}

	fetchParams := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(sr.Result.IDList, ",")},
		"retmode": {"xml"},
		"tool":    {pubmedTool},
		"email":   {contact},
	}

	var set pubmedArticleSet
	if err := httputil.GetXML(ctx, s.Client, pubmedFetchBase+"?"+fetchParams.Encode(), cfg.UserAgent, &set); err != nil {
		return nil, fmt.Errorf("PubMed fetch: %w", err)
	}

	var articles []types.Article
	for _, node := range set.Articles {
		articles = append(articles, mapPubMedArticle(node))
	}
	return articles, nil
}

// mapPubMedArticle converts one PubmedArticle XML node into the normalized
// Article shape. Missing or unparseable fields stay at their zero value.
func mapPubMedArticle(node pubmedArticle) types.Article {
	entry := node.Citation.Article

	title := strings.TrimSpace(entry.Title)
	if title == "" {
		title = "Untitled"
	}

	var abstractParts []string
	for _, text := range entry.AbstractTexts {
		if t := strings.TrimSpace(text); t != "" {
			abstractParts = append(abstractParts, t)
		}
	}

	doi := pubmedDOI(node)
	pmid := strings.TrimSpace(node.Citation.PMID)

	link := ""
	switch {
	case doi != "":
		link = doiURL(doi)
	case pmid != "":
		link = fmt.Sprintf("https://pubmed.ncbi.nlm.nih.gov/%s/", pmid)
	}

	return types.Article{
		Source:     "PubMed",
		Identifier: pmid,
		Title:      title,
		Abstract:   strings.Join(abstractParts, "\n"),
		Journal:    strings.TrimSpace(entry.JournalTitle),
		Date:       pubmedPubDate(entry),
		Authors:    pubmedAuthors(entry),
		DOI:        doi,
		URL:        link,
	}
}

// pubmedDOI extracts the DOI, preferring ELocationID over the PubmedData
// article ID list.
func pubmedDOI(node pubmedArticle) string {
	for _, loc := range node.Citation.Article.ELocationIDs {
		if loc.EIdType == "doi" && strings.TrimSpace(loc.Value) != "" {
			return strings.TrimSpace(loc.Value)
		}
	}
	for _, id := range node.Data.ArticleIDs {
		if id.IdType == "doi" && strings.TrimSpace(id.Value) != "" {
			return strings.TrimSpace(id.Value)
		}
	}
	return ""
}

// pubmedAuthors builds display names as "LastName ForeName", falling back
// to initials or the single present part.
func pubmedAuthors(entry pubmedEntry) []string {
	var authors []string
	for _, a := range entry.Authors {
		last := strings.TrimSpace(a.LastName)
		fore := strings.TrimSpace(a.ForeName)
		if fore == "" {
			fore = strings.TrimSpace(a.Initials)
		}
		switch {
		case last != "" && fore != "":
			authors = append(authors, last+" "+fore)
		case last != "":
			authors = append(authors, last)
		case fore != "":
			authors = append(authors, fore)
		}
	}
	return authors
}

// pubmedPubDate picks the publication date, preferring ArticleDate over the
// journal issue PubDate.
func pubmedPubDate(entry pubmedEntry) time.Time {
	for _, d := range []pubmedDate{entry.ArticleDate, entry.JournalDate} {
		if t := parseDateParts(d.Year, d.Month, d.Day); !t.IsZero() {
			return t
		}
	}
	return time.Time{}
}

// parseDateParts parses numeric year/month/day components, progressively
// dropping trailing components that fail to parse. Month names (e.g. "Jan")
// are not understood and degrade to a year-only date.
func parseDateParts(parts ...string) time.Time {
	var present []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			present = append(present, p)
		}
	}
	if len(present) > 3 {
		present = present[:3]
	}

	layouts := []string{"2006", "2006-1", "2006-1-2"}
	for n := len(present); n > 0; n-- {
		if t, err := time.Parse(layouts[n-1], strings.Join(present[:n], "-")); err == nil {
			return t
		}
	}
	return time.Time{}
}

// doiURL returns the canonical doi.org link with the DOI path escaped.
func doiURL(doi string) string {
	u := url.URL{Scheme: "https", Host: "doi.org", Path: "/" + doi}
	return u.String()
}

// PubMed esearch JSON structures.
type pubmedSearchResponse struct {
	Result pubmedSearchResult `json:"esearchresult"`
}

type pubmedSearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}

// PubMed efetch XML structures.
type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation pubmedCitation `xml:"MedlineCitation"`
	Data     pubmedData     `xml:"PubmedData"`
}

type pubmedCitation struct {
	PMID    string      `xml:"PMID"`
	Article pubmedEntry `xml:"Article"`
}

type pubmedEntry struct {
	Title         string            `xml:"ArticleTitle"`
	AbstractTexts []string          `xml:"Abstract>AbstractText"`
	JournalTitle  string            `xml:"Journal>Title"`
	JournalDate   pubmedDate        `xml:"Journal>JournalIssue>PubDate"`
	ArticleDate   pubmedDate        `xml:"ArticleDate"`
	Authors       []pubmedAuthor    `xml:"AuthorList>Author"`
	ELocationIDs  []pubmedELocation `xml:"ELocationID"`
}

type pubmedDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

type pubmedAuthor struct {
	LastName string `xml:"LastName"`
	ForeName string `xml:"ForeName"`
	Initials string `xml:"Initials"`
}

type pubmedELocation struct {
	EIdType string `xml:"EIdType,attr"`
	Value   string `xml:",chardata"`
}

type pubmedData struct {
	ArticleIDs []pubmedArticleID `xml:"ArticleIdList>ArticleId"`
}

type pubmedArticleID struct {
	IdType string `xml:"IdType,attr"`
	Value  string `xml:",chardata"`
}
