// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sources retrieves recent air pollution articles from bibliographic
// APIs and merges them into a single deduplicated list.
package sources

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZeyadKm/airlit/pkg/types"
)

// Source fetches recent articles from a single bibliographic API. Each
// source (PubMed, Crossref) implements this interface.
type Source interface {
	Name() string
	Fetch(ctx context.Context, cfg types.FetchConfig) ([]types.Article, error)
}

// FetchError wraps a failure from one bibliographic source with the source
// name for reporting.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// defaultContactEmail identifies the operator to upstream APIs when no
// contact address is configured.
const defaultContactEmail = "air.pollution.agent@example.com"

// UserAgent builds the User-Agent string sent to upstream APIs. The contact
// address identifies the operator for polite-pool access.
func UserAgent(version, contactEmail string) string {
	if contactEmail == "" {
		contactEmail = defaultContactEmail
	}
	return fmt.Sprintf("airlit/%s (%s)", version, contactEmail)
}

// contactOrDefault resolves the contact address sent in request parameters,
// matching the fallback UserAgent applies.
func contactOrDefault(cfg types.FetchConfig) string {
	if cfg.ContactEmail == "" {
		return defaultContactEmail
	}
	return cfg.ContactEmail
}

// Collect fetches from all sources concurrently and returns the
// deduplicated concatenation of their results in declared source order, so
// the output is identical to a sequential run. Any source failure aborts
// the collection; the first error in source order is returned.
func Collect(ctx context.Context, srcs []Source, cfg types.FetchConfig) ([]types.Article, error) {
	lists := make([][]types.Article, len(srcs))
	errs := make([]error, len(srcs))

	done := make(chan int, len(srcs))
	for i, s := range srcs {
		go func(i int, s Source) {
			articles, err := s.Fetch(ctx, cfg)
			if err != nil {
				errs[i] = &FetchError{Source: s.Name(), Err: err}
			}
			lists[i] = articles
			done <- i
		}(i, s)
	}
	for range srcs {
		<-done
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return Deduplicate(lists...), nil
}

// Deduplicate merges the given per-source lists in order, dropping any
// article whose lower-cased DOI or normalized title was already seen.
// First-seen articles win; relative input order is preserved. The pass is
// stable and evaluates each article once against prior state only.
func Deduplicate(lists ...[]types.Article) []types.Article {
	seenDOI := make(map[string]bool)
	seenTitle := make(map[string]bool)

	var merged []types.Article
	for _, list := range lists {
		for _, a := range list {
			doiKey := strings.ToLower(a.DOI)
			titleKey := normalizeTitle(a.Title)

			if doiKey != "" && seenDOI[doiKey] {
				continue
			}
			if seenTitle[titleKey] {
				continue
			}

			if doiKey != "" {
				seenDOI[doiKey] = true
			}
			seenTitle[titleKey] = true
			merged = append(merged, a)
		}
	}
	return merged
}

// normalizeTitle returns the lower-cased title with runs of whitespace
// collapsed to a single space.
func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}
