package insight

import "fmt"

// ExtractionReason identifies why content was rejected.
type ExtractionReason string

const (
	ReasonEmptyContent        ExtractionReason = "empty_content"
	ReasonTooShort            ExtractionReason = "too_short"
	ReasonUnsupportedLanguage ExtractionReason = "unsupported_language"
)

// ExtractionError reports content that cannot be analyzed. Callers
// discriminate on Reason; downstream stages propagate it unmodified.
type ExtractionError struct {
	Reason ExtractionReason
	// Length and Required are set when Reason is too_short.
	Length   int
	Required int
	// Language is the detected language or script when Reason is
	// unsupported_language.
	Language string
}

func (e *ExtractionError) Error() string {
	switch e.Reason {
	case ReasonEmptyContent:
		return "content is empty"
	case ReasonTooShort:
		return fmt.Sprintf("content length %d is below the minimum of %d", e.Length, e.Required)
	case ReasonUnsupportedLanguage:
		return fmt.Sprintf("unsupported language %q", e.Language)
	}
	return string(e.Reason)
}
