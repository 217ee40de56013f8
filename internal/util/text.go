package util

import "strings"

// SanitizeUTF8 drops invalid UTF-8 sequences and NUL bytes from acquired
// text. Loaders hand every payload through here before the pipeline sees
// it, since OCR output and fetched pages occasionally carry both.
func SanitizeUTF8(value string) string {
	if value == "" {
		return value
	}

	sanitized := strings.ToValidUTF8(value, "")
	return strings.ReplaceAll(sanitized, "\x00", "")
}
