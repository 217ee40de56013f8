package loader

import "github.com/pkoukk/tiktoken-go"

// tokenEncoding is the tiktoken encoding used for budget checks across
// all loaders.
const tokenEncoding = "o200k_base"

// CountTokens returns the token count of text under the shared encoding.
func CountTokens(text string) (int, error) {
	enc, err := tiktoken.GetEncoding(tokenEncoding)
	if err != nil {
		return 0, err
	}
	return len(enc.Encode(text, nil, nil)), nil
}

// CapTokens truncates text so it holds at most maxTokens tokens. A
// non-positive maxTokens disables the cap. Truncation happens on token
// boundaries, so the result is always valid UTF-8.
func CapTokens(text string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		return text, nil
	}
	enc, err := tiktoken.GetEncoding(tokenEncoding)
	if err != nil {
		return "", err
	}
	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text, nil
	}
	return enc.Decode(tokens[:maxTokens]), nil
}
