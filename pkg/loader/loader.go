// Package loader resolves caller-supplied content sources into the cleaned
// article text the analysis pipeline consumes. Each source kind (web page,
// local file, S3 object, image) has its own loader subpackage; this package
// holds the shared contract and the Resolver that dispatches between them.
package loader

import (
	"context"
	"fmt"
	"mime"
	"strings"
)

// SourceType names where article content comes from.
type SourceType string

const (
	SourceTypeText  SourceType = "text"
	SourceTypeURL   SourceType = "url"
	SourceTypeFile  SourceType = "file"
	SourceTypeS3    SourceType = "s3"
	SourceTypeImage SourceType = "image"
)

// Valid reports whether the source type is one of the known kinds.
func (t SourceType) Valid() bool {
	switch t {
	case SourceTypeText, SourceTypeURL, SourceTypeFile, SourceTypeS3, SourceTypeImage:
		return true
	}
	return false
}

// Source is a caller-supplied pointer to article content. Value carries
// the text itself for SourceTypeText, otherwise a URL, file path or
// object key.
type Source struct {
	Type  SourceType `json:"type"`
	Value string     `json:"value"`
}

// Base64Content is binary content encoded for embedding in a vision
// request. ContentType is the full data-URL prefix, e.g.
// "data:image/png;base64,".
type Base64Content struct {
	Base64      string `json:"base64"`
	ContentType string `json:"content_type"`
}

// DataURL renders the content as a single data URL string.
func (b Base64Content) DataURL() string {
	return b.ContentType + b.Base64
}

// TextLoader loads the content behind one source kind. Implementations
// cache by CacheKey and are safe for concurrent use.
type TextLoader interface {
	LoadText(ctx context.Context, src Source) ([]byte, error)
	LoadBase64(ctx context.Context, src Source) (Base64Content, error)
}

// CacheKey identifies a source for per-process caching.
func CacheKey(src Source) string {
	return string(src.Type) + ":" + src.Value
}

// Base64Prefix derives the data-URL prefix for a file name from its
// extension, falling back to application/octet-stream.
func Base64Prefix(name string) string {
	nameSplit := strings.Split(name, ".")
	if len(nameSplit) < 2 {
		return "data:application/octet-stream;base64,"
	}
	ext := nameSplit[len(nameSplit)-1]
	mimeType := mime.TypeByExtension("." + ext)
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,", mimeType)
}
