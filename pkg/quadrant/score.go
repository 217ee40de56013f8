package quadrant

import (
	"strings"

	"github.com/insightgrid/insightgrid/pkg/insight"
)

// Cue word lists for the lexical dimensions. Matching is substring based
// on the lowercased insight text, so "implements" counts for "implement".
var (
	practicalCues = []string{"implement", "execute", "build", "create", "develop", "deploy"}
	urgentCues    = []string{"immediate", "urgent", "critical", "now", "asap", "emergency"}
	complexCues   = []string{"complex", "difficult", "challenging", "hard", "complicated"}
)

// Score projects an insight onto the two axes. Both coordinates are
// clamped to [-1, 1], so Score never produces a value Classify rejects.
func Score(in insight.Insight, xAxis, yAxis AxisSpec) ScoredInsight {
	return ScoredInsight{
		Insight: in,
		X:       dimensionValue(in, xAxis.Dimension, axisX),
		Y:       dimensionValue(in, yAxis.Dimension, axisY),
	}
}

func dimensionValue(in insight.Insight, dim Dimension, role axisRole) float64 {
	var v float64
	switch dim {
	case DimensionImportance, DimensionImpact:
		v = in.Salience*2 - 1
	case DimensionSentiment:
		v = in.Sentiment
	case DimensionNovelty:
		v = uniqueTokenRatio(in.Text)*2 - 1
	case DimensionPracticality:
		v = cueRatio(in.Text, practicalCues)*2 - 1
	case DimensionUrgency:
		v = cueRatio(in.Text, urgentCues)*2 - 1
	case DimensionFeasibility:
		v = 1 - 2*cueRatio(in.Text, complexCues)
	case DimensionComplexity:
		v = 2*cueRatio(in.Text, complexCues) - 1
	default:
		// Custom blends salience and sentiment, with the difference on the
		// y axis so the two axes stay independent.
		imp := in.Salience*2 - 1
		if role == axisX {
			v = (imp + in.Sentiment) / 2
		} else {
			v = (imp - in.Sentiment) / 2
		}
	}
	return clamp(v, -1, 1)
}

// cueRatio returns the fraction of cue words found in the text.
func cueRatio(text string, cues []string) float64 {
	lower := strings.ToLower(text)
	hits := 0
	for _, cue := range cues {
		if strings.Contains(lower, cue) {
			hits++
		}
	}
	return float64(hits) / float64(len(cues))
}

// uniqueTokenRatio is the share of distinct whitespace tokens. Empty text
// returns 0.5 so the novelty dimension lands at 0 rather than -1.
func uniqueTokenRatio(text string) float64 {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return 0.5
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		seen[f] = struct{}{}
	}
	return float64(len(seen)) / float64(len(fields))
}
