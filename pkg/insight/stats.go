package insight

import (
	"strings"
	"unicode"
)

// Reading-ease bands for the complexity label.
const (
	easeSimple   = 60.0
	easeModerate = 30.0
)

func buildStats(text string, sentences []string, lang string) TextStats {
	words := countWords(text, lang)
	sentenceCount := len(sentences)
	paragraphs := countParagraphs(text)

	stats := TextStats{
		Words:      words,
		Sentences:  sentenceCount,
		Paragraphs: paragraphs,
		Complexity: "unknown",
	}
	if sentenceCount > 0 {
		stats.AvgSentenceLen = float64(words) / float64(sentenceCount)
	}

	// The Flesch formula is calibrated for English syllable structure.
	if lang == LanguageEnglish && words > 0 && sentenceCount > 0 {
		syllables := 0
		for _, field := range strings.Fields(text) {
			syllables += syllableCount(field)
		}
		ease := 206.835 - 1.015*(float64(words)/float64(sentenceCount)) - 84.6*(float64(syllables)/float64(words))
		stats.ReadingEase = clamp(ease, 0, 100)
		stats.Complexity = complexityLabel(stats.ReadingEase)
	}

	return stats
}

func complexityLabel(ease float64) string {
	switch {
	case ease >= easeSimple:
		return "simple"
	case ease >= easeModerate:
		return "moderate"
	default:
		return "complex"
	}
}

// countWords counts whitespace-delimited words for Latin text. Han
// characters count individually since Chinese does not delimit words.
func countWords(text, lang string) int {
	if lang != LanguageChinese {
		return len(strings.Fields(text))
	}

	count := 0
	inLatinWord := false
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			count++
			inLatinWord = false
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if !inLatinWord {
				count++
				inLatinWord = true
			}
			continue
		}
		inLatinWord = false
	}
	return count
}

func countParagraphs(text string) int {
	count := 0
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}

func syllableCount(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 0
	}

	groups := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			groups++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && groups > 1 {
		groups--
	}
	if groups == 0 {
		groups = 1
	}
	return groups
}
