package insight

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var tableDelimRe = regexp.MustCompile(`^\s*\|?\s*:?-{3,}:?\s*(\|\s*:?-{3,}:?\s*)+\|?\s*$`)

// splitIntoSentences breaks text into sentence units. Markdown tables are
// kept as a single unit, numeric listings ("1. first 2. second") stay inside
// their sentence, and CJK terminators end sentences the same way Latin
// punctuation does.
func splitIntoSentences(text string) []string {
	lines := strings.Split(text, "\n")
	var sentences []string
	var currentSentence strings.Builder

	isTableRow := func(line string) bool {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return false
		}
		return strings.Contains(trimmed, "|")
	}

	flushCurrent := func() {
		if currentSentence.Len() > 0 {
			sentences = append(sentences, strings.TrimSpace(currentSentence.String()))
			currentSentence.Reset()
		}
	}

	appendLineSentences := func(trimmed string) {
		for _, sentence := range splitLineIntoSentences(trimmed) {
			if currentSentence.Len() > 0 {
				currentSentence.WriteString(" ")
			}
			currentSentence.WriteString(sentence)

			if endsWithTerminator(sentence) {
				flushCurrent()
			}
		}
	}

	inTable := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if !inTable && isTableRow(line) && i+1 < len(lines) && tableDelimRe.MatchString(strings.TrimSpace(lines[i+1])) {
			flushCurrent()
			inTable = true
			currentSentence.WriteString(line)
			continue
		}

		if !inTable && isTableRow(line) {
			flushCurrent()
			sentences = append(sentences, trimmed)
			continue
		}

		if inTable {
			if trimmed == "" || !isTableRow(line) {
				inTable = false
				flushCurrent()
				if trimmed != "" {
					appendLineSentences(trimmed)
				}
			} else {
				currentSentence.WriteString("\n")
				currentSentence.WriteString(line)
			}
			continue
		}

		if trimmed == "" {
			flushCurrent()
		} else {
			appendLineSentences(trimmed)
		}
	}

	flushCurrent()

	var result []string
	for _, sentence := range sentences {
		if strings.TrimSpace(sentence) != "" {
			result = append(result, sentence)
		}
	}

	return result
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？', '；':
		return true
	}
	return false
}

func isClosing(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '}', '”', '’', '」', '』', '）':
		return true
	}
	return false
}

func endsWithTerminator(sentence string) bool {
	trimmed := strings.TrimSpace(sentence)
	for len(trimmed) > 0 {
		r, size := utf8.DecodeLastRuneInString(trimmed)
		if isClosing(r) {
			trimmed = trimmed[:len(trimmed)-size]
			continue
		}
		return isTerminator(r)
	}
	return false
}

func splitLineIntoSentences(line string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])

		if !isTerminator(runes[i]) {
			continue
		}

		// "1. first point 2. second point" is a listing, not a boundary.
		if runes[i] == '.' && i > 0 && unicode.IsDigit(runes[i-1]) {
			if i+1 < len(runes) && runes[i+1] == ' ' {
				continue
			}
		}

		j := i + 1
		for j < len(runes) && isTerminator(runes[j]) {
			current.WriteRune(runes[j])
			j++
		}

		for j < len(runes) && isClosing(runes[j]) {
			current.WriteRune(runes[j])
			j++
		}

		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
		i = j - 1
	}

	remaining := strings.TrimSpace(current.String())
	if remaining != "" {
		sentences = append(sentences, remaining)
	}

	return sentences
}

// candidatePositions returns the indices of sentences eligible to become
// insights. Fragments and oversized units such as whole tables are skipped.
func candidatePositions(sentences []string) []int {
	var positions []int
	for i, s := range sentences {
		n := utf8.RuneCountInString(s)
		if n < minSentenceRunes || n > maxSentenceRunes {
			continue
		}
		positions = append(positions, i)
	}
	return positions
}
