// Package insight extracts salient, sentiment-scored statements from cleaned
// article text. Extraction is a pure function of its input: no I/O, no
// randomness, stable ordering. Identical text always yields identical results.
package insight

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Default extraction bounds.
const (
	DefaultMaxInsights = 20
	DefaultMinLength   = 100
)

// Sentences outside these bounds are never considered insight candidates.
const (
	minSentenceRunes = 10
	maxSentenceRunes = 500
)

const maxKeywords = 10

// Insight is a single extracted statement with its analysis scores.
type Insight struct {
	// ID is derived from the insight's position and text, so re-running
	// extraction over the same content produces the same IDs.
	ID string `json:"id"`
	// Text is the verbatim sentence the insight was extracted from.
	Text string `json:"text"`
	// Salience is the relative importance of the insight within its
	// document, in [0, 1].
	Salience float64 `json:"salience"`
	// Sentiment is the polarity of the insight, in [-1, 1].
	Sentiment float64 `json:"sentiment"`
	// Entities are named entities mentioned in the text, sorted and unique.
	Entities []string `json:"entities,omitempty"`
	// Position is the sentence index within the source document.
	Position int `json:"position"`
}

// Keyword is a weighted document term.
type Keyword struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

// SentimentSummary describes the polarity of a whole document.
type SentimentSummary struct {
	Polarity   float64 `json:"polarity"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// TextStats are surface statistics over the analyzed document.
type TextStats struct {
	Words          int     `json:"words"`
	Sentences      int     `json:"sentences"`
	Paragraphs     int     `json:"paragraphs"`
	AvgSentenceLen float64 `json:"avg_sentence_len"`
	ReadingEase    float64 `json:"reading_ease"`
	Complexity     string  `json:"complexity"`
}

// Result is the complete output of one extraction run.
type Result struct {
	Insights []Insight        `json:"insights"`
	Language string           `json:"language"`
	Keywords []Keyword        `json:"keywords"`
	Overall  SentimentSummary `json:"overall_sentiment"`
	Stats    TextStats        `json:"stats"`
}

// Options bound an extraction run. The zero value selects the defaults.
type Options struct {
	// MaxInsights caps how many insights are returned.
	MaxInsights int `json:"max_insights,omitempty"`
	// MinLength is the minimum accepted content length in characters.
	MinLength int `json:"min_length,omitempty"`
}

func (o Options) withDefaults() Options {
	if o.MaxInsights <= 0 {
		o.MaxInsights = DefaultMaxInsights
	}
	if o.MinLength <= 0 {
		o.MinLength = DefaultMinLength
	}
	return o
}

func insightID(position int, text string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%d:%s", position, text))
	return hex.EncodeToString(sum[:])[:12]
}
