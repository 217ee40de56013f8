package insight

import (
	"math"
	"strings"
	"unicode"
)

// Valence values follow the usual lexicon convention of roughly -4..4 before
// normalization. The Chinese entries are bigrams so they line up with the
// bigram tokenizer.
var wordValence = map[string]float64{
	"good": 1.9, "great": 3.1, "excellent": 2.7, "amazing": 2.8,
	"outstanding": 2.5, "positive": 2.3, "success": 2.7, "successful": 2.8,
	"win": 2.8, "wins": 2.7, "won": 2.7, "benefit": 2.0, "benefits": 1.7,
	"improve": 1.9, "improved": 2.1, "improvement": 2.0, "growth": 1.4,
	"grow": 1.4, "gain": 2.4, "gains": 2.2, "strong": 2.3, "best": 3.2,
	"better": 1.9, "innovative": 1.8, "innovation": 1.5, "efficient": 1.8,
	"effective": 2.1, "opportunity": 1.8, "promising": 1.7, "progress": 1.7,
	"breakthrough": 2.4, "advantage": 1.9, "profit": 2.0, "profitable": 2.2,
	"love": 3.2, "happy": 2.7, "safe": 1.8, "secure": 1.4, "reliable": 1.9,
	"easy": 1.9, "helpful": 1.8, "valuable": 2.1, "robust": 1.6,

	"bad": -2.5, "poor": -2.1, "terrible": -3.1, "awful": -2.9,
	"negative": -2.3, "failure": -2.5, "fail": -2.4, "fails": -2.3,
	"failed": -2.4, "loss": -2.4, "losses": -2.2, "lose": -2.5,
	"decline": -1.7, "declined": -1.7, "drop": -1.2, "dropped": -1.3,
	"weak": -1.9, "worst": -3.1, "worse": -2.1, "risk": -1.4, "risks": -1.3,
	"risky": -1.7, "threat": -2.2, "threats": -2.0, "problem": -1.7,
	"problems": -1.7, "crisis": -2.6, "danger": -2.4, "dangerous": -2.4,
	"harm": -2.5, "harmful": -2.4, "damage": -2.2, "concern": -1.2,
	"concerns": -1.2, "difficult": -1.5, "hard": -0.4, "costly": -1.4,
	"expensive": -0.9, "slow": -1.2, "unreliable": -2.0, "vulnerable": -1.9,
	"hate": -2.7, "sad": -2.1, "wrong": -2.1, "broken": -1.9,

	"成功": 2.7, "优秀": 2.5, "增长": 1.5, "改善": 1.9, "创新": 1.6,
	"机会": 1.7, "突破": 2.2, "领先": 1.8, "高效": 1.8, "可靠": 1.7,
	"失败": -2.5, "下降": -1.4, "风险": -1.4, "问题": -1.6, "危机": -2.6,
	"威胁": -2.1, "损失": -2.2, "困难": -1.6, "缺陷": -1.9, "糟糕": -2.6,
}

var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "neither": {}, "nobody": {},
	"none": {}, "cannot": {}, "cant": {}, "dont": {}, "doesnt": {},
	"didnt": {}, "wont": {}, "wouldnt": {}, "couldnt": {}, "shouldnt": {},
	"isnt": {}, "arent": {}, "wasnt": {}, "werent": {}, "without": {},
	"hardly": {}, "barely": {}, "rarely": {}, "seldom": {},
}

var boosters = map[string]float64{
	"very": 0.293, "extremely": 0.4, "incredibly": 0.4, "really": 0.2,
	"highly": 0.3, "absolutely": 0.35, "completely": 0.3, "totally": 0.3,
	"deeply": 0.3, "especially": 0.25, "particularly": 0.25,
	"significantly": 0.3, "quite": 0.15, "somewhat": -0.15,
	"slightly": -0.25, "marginally": -0.25, "moderately": -0.1,
}

const negationDamp = -0.74

// scoreSentiment computes the polarity of a span in [-1, 1] with a
// deterministic valence lexicon. Negators within the two preceding words
// flip and dampen a hit, intensity adverbs boost it. The summed valence is
// squashed with the standard alpha-15 normalization.
func scoreSentiment(text, lang string) float64 {
	words := sentimentTokens(text, lang)

	var sum float64
	for i, w := range words {
		valence, ok := wordValence[w]
		if !ok {
			continue
		}

		var boost float64
		negated := false
		for j := max(0, i-2); j < i; j++ {
			if _, isNeg := negators[words[j]]; isNeg {
				negated = true
			}
			if b, isBoost := boosters[words[j]]; isBoost {
				boost += b
			}
		}

		if valence > 0 {
			valence += boost
		} else {
			valence -= boost
		}
		if negated {
			valence *= negationDamp
		}
		sum += valence
	}

	if sum == 0 {
		return 0
	}
	compound := sum / math.Sqrt(sum*sum+15)
	return clamp(compound, -1, 1)
}

// sentimentTokens keeps contractions intact so "doesn't" matches the
// negator list as "doesnt".
func sentimentTokens(text, lang string) []string {
	if lang == LanguageChinese {
		return tokenizeHanBigrams(text)
	}

	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) {
				return r
			}
			return -1
		}, f)
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// sentimentLabel maps a compound polarity onto the five-step scale.
func sentimentLabel(polarity float64) string {
	switch {
	case polarity >= 0.5:
		return "very_positive"
	case polarity >= 0.05:
		return "positive"
	case polarity <= -0.5:
		return "very_negative"
	case polarity <= -0.05:
		return "negative"
	default:
		return "neutral"
	}
}

func overallSentiment(text, lang string) SentimentSummary {
	polarity := scoreSentiment(text, lang)
	return SentimentSummary{
		Polarity:   polarity,
		Label:      sentimentLabel(polarity),
		Confidence: clamp(0.5+math.Abs(polarity)/2, 0, 1),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
