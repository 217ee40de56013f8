package insight

import "unicode"

// Supported language codes.
const (
	LanguageEnglish = "en"
	LanguageChinese = "zh"
)

// detectLanguage classifies text by script composition. Text whose letters
// are more than 30% Han characters is Chinese, text whose letters are mostly
// Latin is English. Everything else is unsupported; the returned code names
// the dominant script for error reporting.
func detectLanguage(text string) (string, bool) {
	var letters, latin, han, kana, hangul, cyrillic, arabic int

	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		switch {
		case r < 128:
			latin++
		case unicode.Is(unicode.Han, r):
			han++
		case unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			kana++
		case unicode.Is(unicode.Hangul, r):
			hangul++
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		case unicode.Is(unicode.Arabic, r):
			arabic++
		}
	}

	if letters == 0 {
		return "unknown", false
	}

	ratio := func(n int) float64 {
		return float64(n) / float64(letters)
	}

	// Kana is a strong Japanese signal even in Han-heavy text.
	if ratio(kana) >= 0.05 {
		return "ja", false
	}
	if ratio(han) > 0.3 {
		return LanguageChinese, true
	}
	if ratio(hangul) > 0.3 {
		return "ko", false
	}
	if ratio(latin) >= 0.5 {
		return LanguageEnglish, true
	}
	if ratio(cyrillic) > 0.3 {
		return "cyrillic", false
	}
	if ratio(arabic) > 0.3 {
		return "arabic", false
	}
	return "unknown", false
}
