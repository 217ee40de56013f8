package insight

import "testing"

func TestExtractKeywords(t *testing.T) {
	tokens := []string{
		"technology", "technology", "technology",
		"market", "market",
		"report",
	}

	got := extractKeywords(tokens, 10)
	if len(got) != 3 {
		t.Fatalf("extractKeywords() returned %d keywords, want 3", len(got))
	}
	if got[0].Term != "technology" || got[0].Count != 3 {
		t.Errorf("top keyword = %+v, want technology with count 3", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("keywords not sorted by descending score: %v after %v", got[i], got[i-1])
		}
	}
}

func TestExtractKeywordsLimit(t *testing.T) {
	tokens := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	got := extractKeywords(tokens, 2)
	if len(got) != 2 {
		t.Fatalf("extractKeywords() returned %d keywords, want 2", len(got))
	}
}

func TestExtractKeywordsEmpty(t *testing.T) {
	if got := extractKeywords(nil, 10); got != nil {
		t.Errorf("extractKeywords(nil) = %v, want nil", got)
	}
}

func TestTokenizeEnglish(t *testing.T) {
	got := tokenize("The quick brown fox jumps over the lazy dog", LanguageEnglish)
	want := []string{"quick", "brown", "fox", "jumps", "lazy", "dog"}
	if len(got) != len(want) {
		t.Fatalf("tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenizeChineseBigrams(t *testing.T) {
	got := tokenize("云计算", LanguageChinese)
	want := []string{"云计", "计算"}
	if len(got) != len(want) {
		t.Fatalf("tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
