package docs

import (
	"sort"
	"strings"
)

// SearchResult is one ranked hit from a documentation search.
type SearchResult struct {
	FunctionID  string  `json:"function_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Signature   string  `json:"signature"`
	Score       float64 `json:"score"`
}

// minFuzzyRatio is the lowest similarity ratio still considered a fuzzy
// name match.
const minFuzzyRatio = 0.6

// Searcher ranks indexed functions against free-text queries.
type Searcher struct {
	indexer *Indexer
}

// NewSearcher wraps an indexer for querying.
func NewSearcher(indexer *Indexer) *Searcher {
	return &Searcher{indexer: indexer}
}

// Search ranks every indexed function against query. An empty query
// lists everything at a neutral score. When category is non-empty only
// functions in that category are considered. Results are ordered by
// score descending, then by name.
func (s *Searcher) Search(query, category string, limit int) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))

	var results []SearchResult
	for _, doc := range s.indexer.All() {
		if category != "" && !strings.EqualFold(doc.Category, category) {
			continue
		}
		score := scoreMatch(query, doc)
		if score <= 0 {
			continue
		}
		results = append(results, SearchResult{
			FunctionID:  doc.FunctionID,
			Name:        doc.Name,
			Category:    doc.Category,
			Description: doc.Description,
			Signature:   doc.Signature,
			Score:       score,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Name < results[j].Name
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// scoreMatch implements the ranking ladder. Name matches always beat
// description matches of the same kind.
func scoreMatch(query string, doc Documentation) float64 {
	if query == "" {
		return 0.5
	}

	name := strings.ToLower(doc.Name)
	switch {
	case name == query:
		return 1.0
	case strings.HasPrefix(name, query):
		return 0.9
	case strings.Contains(name, query):
		return 0.8
	}

	if ratio := similarityRatio(query, name); ratio > minFuzzyRatio {
		// Scale the 0.6-1.0 ratio band onto 0.5-0.7.
		return 0.5 + (ratio-minFuzzyRatio)*0.5
	}

	description := strings.ToLower(doc.Description)

	descriptionWords := make(map[string]struct{})
	for _, w := range strings.Fields(description) {
		descriptionWords[w] = struct{}{}
	}

	queryWords := strings.Fields(query)
	matched := 0
	for _, w := range queryWords {
		if _, ok := descriptionWords[w]; ok {
			matched++
		}
	}
	if matched > 0 {
		return float64(matched) / float64(len(queryWords)) * 0.5
	}

	if strings.Contains(description, query) {
		return 0.3
	}
	return 0
}

// similarityRatio reports 2*LCS/(len(a)+len(b)), the same measure
// difflib's SequenceMatcher ratio produces for two short strings.
func similarityRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return 2 * float64(prev[len(b)]) / float64(len(a)+len(b))
}
