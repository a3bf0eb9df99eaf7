// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"fmt"
	"strings"

	"github.com/ZeyadKm/airlit/pkg/types"
)

// Summarize produces the one-line body summary for an article: the first
// two sentences of its abstract (or a placeholder when the abstract is
// empty), followed by a "Key details:" clause listing whichever of journal,
// date, and DOI are present.
func Summarize(a types.Article) string {
	sentences := splitSentences(a.Abstract)

	var summary string
	if len(sentences) > 0 {
		if len(sentences) > 2 {
			sentences = sentences[:2]
		}
		summary = strings.Join(sentences, " ")
	} else {
		summary = fmt.Sprintf("%s discusses air pollution dynamics but no abstract was available.",
			strings.TrimSpace(a.Title))
	}

	parts := []string{strings.TrimRight(summary, "."), "Key details:"}

	var details []string
	if a.Journal != "" {
		details = append(details, "journal="+a.Journal)
	}
	if !a.Date.IsZero() {
		details = append(details, "date="+a.Date.Format("2006-01-02"))
	}
	if a.DOI != "" {
		details = append(details, "doi="+a.DOI)
	}
	if len(details) > 0 {
		parts = append(parts, strings.Join(details, "; "))
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// splitSentences divides text into sentences with a lightweight rule:
// whitespace is collapsed, then a sentence ends at '.', '!', or '?'
// followed by whitespace and an uppercase letter or digit. The rule keeps
// abbreviation periods mid-sentence in the common case but is not
// grammar-aware.
func splitSentences(text string) []string {
	clean := strings.Join(strings.Fields(text), " ")
	if clean == "" {
		return nil
	}

	var sentences []string
	start := 0
	for i := 0; i+2 < len(clean); i++ {
		if isSentenceEnd(clean[i]) && clean[i+1] == ' ' && isUpperOrDigit(clean[i+2]) {
			sentences = append(sentences, clean[start:i+1])
			start = i + 2
		}
	}
	if tail := clean[start:]; tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

func isSentenceEnd(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isUpperOrDigit(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
