package insight

import (
	"regexp"
	"strings"
)

var emphasisCues = []string{
	"important", "significant", "key", "critical", "essential", "crucial",
	"major", "fundamental", "notable", "vital",
	"重要", "关键", "核心", "必须", "显著",
}

var reNumericMention = regexp.MustCompile(`\d+(?:[.,]\d+)?\s?(?:%|percent|million|billion|trillion)?`)

// salienceScores assigns every sentence an importance in [0, 1]. The base is
// the mean max-normalized document frequency of the sentence's content
// tokens, weighted by position with a linear decay from 1.0 at the start of
// the document to 0.5 at the end. Emphasis cues add 0.2 and numeric mentions
// add 0.1 before clamping.
func salienceScores(sentences []string, lang string) []float64 {
	freq := map[string]int{}
	tokensBySentence := make([][]string, len(sentences))
	for i, s := range sentences {
		tokens := tokenize(s, lang)
		tokensBySentence[i] = tokens
		for _, t := range tokens {
			freq[t]++
		}
	}

	maxFreq := 0
	for _, n := range freq {
		if n > maxFreq {
			maxFreq = n
		}
	}

	scores := make([]float64, len(sentences))
	for i, tokens := range tokensBySentence {
		var tf float64
		if len(tokens) > 0 && maxFreq > 0 {
			var sum float64
			for _, t := range tokens {
				sum += float64(freq[t]) / float64(maxFreq)
			}
			tf = sum / float64(len(tokens))
		}

		positional := 1.0
		if len(sentences) > 1 {
			positional = 1.0 - 0.5*float64(i)/float64(len(sentences)-1)
		}

		score := tf * positional
		if hasEmphasisCue(sentences[i]) {
			score += 0.2
		}
		if reNumericMention.MatchString(sentences[i]) {
			score += 0.1
		}
		scores[i] = clamp(score, 0, 1)
	}

	return scores
}

func hasEmphasisCue(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, cue := range emphasisCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
