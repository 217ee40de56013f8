package insight

import (
	"sort"
	"unicode/utf8"
)

// extractKeywords ranks content tokens by frequency weighted with term
// length, so longer domain terms beat short filler that slipped past the
// stopword list. Ties break alphabetically for stable output.
func extractKeywords(tokens []string, limit int) []Keyword {
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}

	total := float64(len(tokens))
	keywords := make([]Keyword, 0, len(counts))
	for term, count := range counts {
		score := float64(count) / total * float64(utf8.RuneCountInString(term))
		keywords = append(keywords, Keyword{Term: term, Score: score, Count: count})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		return keywords[i].Term < keywords[j].Term
	})

	if len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}
