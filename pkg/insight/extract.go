package insight

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Extract analyzes cleaned article text and returns its most salient
// insights together with document-level keywords, sentiment and statistics.
// Insights are ordered by descending salience with document position
// breaking ties. Content below the configured minimum length or in an
// unsupported language is rejected with an ExtractionError.
func Extract(text string, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &ExtractionError{Reason: ReasonEmptyContent}
	}

	length := utf8.RuneCountInString(trimmed)
	if length < opts.MinLength {
		return nil, &ExtractionError{
			Reason:   ReasonTooShort,
			Length:   length,
			Required: opts.MinLength,
		}
	}

	lang, supported := detectLanguage(trimmed)
	if !supported {
		return nil, &ExtractionError{
			Reason:   ReasonUnsupportedLanguage,
			Language: lang,
		}
	}

	sentences := splitIntoSentences(trimmed)
	scores := salienceScores(sentences, lang)

	insights := []Insight{}
	for _, pos := range candidatePositions(sentences) {
		text := sentences[pos]
		insights = append(insights, Insight{
			ID:        insightID(pos, text),
			Text:      text,
			Salience:  scores[pos],
			Sentiment: scoreSentiment(text, lang),
			Entities:  extractEntities(text),
			Position:  pos,
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		if insights[i].Salience != insights[j].Salience {
			return insights[i].Salience > insights[j].Salience
		}
		return insights[i].Position < insights[j].Position
	})
	if len(insights) > opts.MaxInsights {
		insights = insights[:opts.MaxInsights]
	}

	return &Result{
		Insights: insights,
		Language: lang,
		Keywords: extractKeywords(tokenize(trimmed, lang), maxKeywords),
		Overall:  overallSentiment(trimmed, lang),
		Stats:    buildStats(trimmed, sentences, lang),
	}, nil
}
