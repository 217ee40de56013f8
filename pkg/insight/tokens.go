package insight

import (
	"strings"
	"unicode"
)

var englishStopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "any": {}, "can": {}, "had": {}, "has": {},
	"have": {}, "was": {}, "were": {}, "been": {}, "being": {}, "will": {},
	"would": {}, "could": {}, "should": {}, "may": {}, "might": {},
	"must": {}, "shall": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "with": {}, "from": {}, "into": {}, "through": {},
	"during": {}, "before": {}, "after": {}, "above": {}, "below": {},
	"between": {}, "about": {}, "against": {}, "under": {}, "over": {},
	"out": {}, "off": {}, "then": {}, "than": {}, "too": {}, "very": {},
	"just": {}, "also": {}, "such": {}, "only": {}, "own": {}, "same": {},
	"here": {}, "there": {}, "where": {}, "when": {}, "why": {}, "how": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "they": {}, "them": {},
	"their": {}, "its": {}, "his": {}, "her": {}, "our": {}, "your": {},
	"more": {}, "most": {}, "other": {}, "some": {}, "each": {}, "both": {},
	"few": {}, "because": {}, "while": {}, "does": {}, "did": {},
	"doing": {}, "once": {}, "again": {}, "further": {}, "now": {},
}

var chineseStopwords = map[string]struct{}{
	"我们": {}, "他们": {}, "你们": {}, "这个": {}, "那个": {}, "这些": {},
	"那些": {}, "可以": {}, "没有": {}, "不是": {}, "就是": {}, "但是": {},
	"因为": {}, "所以": {}, "如果": {}, "虽然": {}, "已经": {}, "还是": {},
}

// tokenize produces lowercased content tokens for frequency analysis.
// English tokens are alphabetic words longer than two characters with
// stopwords removed. Chinese text is tokenized into character bigrams over
// maximal Han runs, the usual fallback when no segmenter is available.
func tokenize(text, lang string) []string {
	if lang == LanguageChinese {
		return tokenizeHanBigrams(text)
	}
	return tokenizeEnglish(text)
}

func tokenizeEnglish(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := strings.ToLower(current.String())
		current.Reset()
		if len(word) <= 2 {
			return
		}
		if _, stop := englishStopwords[word]; stop {
			return
		}
		tokens = append(tokens, word)
	}

	for _, r := range text {
		if unicode.IsLetter(r) && r < 128 {
			current.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}

func tokenizeHanBigrams(text string) []string {
	var tokens []string
	var run []rune

	flush := func() {
		if len(run) == 1 {
			run = run[:0]
			return
		}
		for i := 0; i+1 < len(run); i++ {
			bigram := string(run[i : i+2])
			if _, stop := chineseStopwords[bigram]; stop {
				continue
			}
			tokens = append(tokens, bigram)
		}
		run = run[:0]
	}

	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			run = append(run, r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}
