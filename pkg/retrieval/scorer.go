// Package retrieval ranks stored pages against a user question with a plain
// bag-of-words score and renders the winners as LLM context.
package retrieval

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"MITSAssistant/models"
)

const (
	// MaxResults is how many pages a single question can pull into context.
	MaxResults = 5

	phraseBonus   = 50
	minWordLength = 3
	separator     = "\n\n---\n\n"
)

type Page struct {
	URL     string
	Title   string
	Content string
}

type Scored struct {
	Page
	Score int
}

// PagesFrom adapts stored rows.
func PagesFrom(rows []models.ScrapedContent) []Page {
	out := make([]Page, 0, len(rows))
	for _, r := range rows {
		out = append(out, Page{URL: r.URL, Title: r.Title, Content: r.Content})
	}
	return out
}

func queryWords(q string) []string {
	var words []string
	for _, w := range strings.Fields(q) {
		if utf8.RuneCountInString(w) >= minWordLength {
			words = append(words, w)
		}
	}
	return words
}

// Score counts non-overlapping literal occurrences of each query word in the
// page title and content, plus a bonus when the whole query appears verbatim.
func Score(p Page, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	text := strings.ToLower(p.Title + " " + p.Content)

	score := 0
	for _, w := range queryWords(q) {
		score += strings.Count(text, w)
	}
	if strings.Contains(text, q) {
		score += phraseBonus
	}
	return score
}

// Rank returns at most MaxResults pages with a positive score, best first.
// Ties keep their input order.
func Rank(pages []Page, query string) []Scored {
	var out []Scored
	for _, p := range pages {
		if s := Score(p, query); s > 0 {
			out = append(out, Scored{Page: p, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > MaxResults {
		out = out[:MaxResults]
	}
	return out
}

// BuildContext labels each page with its 1-based source index.
func BuildContext(scored []Scored) string {
	parts := make([]string, 0, len(scored))
	for i, s := range scored {
		parts = append(parts, fmt.Sprintf("[Source %d: %s - %s]\n%s", i+1, s.Title, s.URL, s.Content))
	}
	return strings.Join(parts, separator)
}

func Sources(scored []Scored) []models.Source {
	out := make([]models.Source, 0, len(scored))
	for _, s := range scored {
		out = append(out, models.Source{Title: s.Title, URL: s.URL})
	}
	return out
}
