// Package file loads articles from the local filesystem.
package file

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/insightgrid/insightgrid/pkg/loader"

	"codeberg.org/readeck/go-readability/v2"
	"golang.org/x/sync/singleflight"
)

// FileLoader loads article content from local files with caching. Plain
// text formats pass through unchanged, HTML is reduced to its readable
// article body, and Word documents are unpacked to their text content.
type FileLoader struct {
	maxBytes int64

	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewFileLoaderParams contains configuration options for creating a new
// FileLoader.
type NewFileLoaderParams struct {
	// MaxBytes caps the file size. Zero means 8 MiB.
	MaxBytes int64
}

// NewFileLoader creates a new filesystem-based loader.
func NewFileLoader(params NewFileLoaderParams) *FileLoader {
	maxBytes := params.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 8 << 20
	}

	return &FileLoader{
		maxBytes: maxBytes,
		cache:    make(map[string][]byte),
	}
}

// LoadText reads a file and extracts its text content based on the file
// extension. Results are cached, and concurrent requests for the same
// path share a single read.
func (l *FileLoader) LoadText(ctx context.Context, src loader.Source) ([]byte, error) {
	key := loader.CacheKey(src)

	l.cacheMu.RLock()
	if cached, ok := l.cache[key]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(key, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[key]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		content, err := l.read(src)
		if err != nil {
			return nil, err
		}

		text, err := ExtractText(src, content)
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[key] = text
		l.cacheMu.Unlock()

		return text, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

// LoadBase64 reads a file and returns it encoded as base64 with a MIME
// prefix derived from the file extension.
func (l *FileLoader) LoadBase64(ctx context.Context, src loader.Source) (loader.Base64Content, error) {
	content, err := l.read(src)
	if err != nil {
		return loader.Base64Content{}, err
	}

	return loader.Base64Content{
		Base64:      base64.StdEncoding.EncodeToString(content),
		ContentType: loader.Base64Prefix(src.Value),
	}, nil
}

// InvalidateCache removes a single path from the cache.
func (l *FileLoader) InvalidateCache(src loader.Source) {
	l.cacheMu.Lock()
	delete(l.cache, loader.CacheKey(src))
	l.cacheMu.Unlock()
}

// ClearCache removes all cached content.
func (l *FileLoader) ClearCache() {
	l.cacheMu.Lock()
	l.cache = make(map[string][]byte)
	l.cacheMu.Unlock()
}

func (l *FileLoader) read(src loader.Source) ([]byte, error) {
	info, err := os.Stat(src.Value)
	if err != nil {
		return nil, &loader.AcquisitionError{
			Source: src,
			Reason: loader.ReasonUnreachable,
			Detail: "stat file",
			Err:    err,
		}
	}
	if info.Size() > l.maxBytes {
		return nil, &loader.AcquisitionError{
			Source: src,
			Reason: loader.ReasonTooLarge,
			Detail: fmt.Sprintf("file exceeds %d bytes", l.maxBytes),
		}
	}

	content, err := os.ReadFile(src.Value)
	if err != nil {
		return nil, &loader.AcquisitionError{
			Source: src,
			Reason: loader.ReasonUnreachable,
			Detail: "reading file",
			Err:    err,
		}
	}

	return content, nil
}

// ExtractText converts raw file content to article text based on the
// extension of the source value. Extensionless sources are treated as
// plain text. Other loaders that hand out file-like content (S3 objects)
// share this dispatch.
func ExtractText(src loader.Source, content []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(src.Value)) {
	case "", ".txt", ".text", ".md", ".markdown":
		return content, nil
	case ".html", ".htm", ".xhtml":
		return extractHTML(src.Value, content)
	case ".docx":
		return parseDocx(content)
	default:
		return nil, &loader.AcquisitionError{
			Source: src,
			Reason: loader.ReasonUnsupported,
			Detail: fmt.Sprintf("extension %q", filepath.Ext(src.Value)),
		}
	}
}

func extractHTML(path string, content []byte) ([]byte, error) {
	u := &url.URL{Scheme: "file", Path: path}

	article, err := readability.FromReader(bytes.NewReader(content), u)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var builder strings.Builder
	if err := article.RenderText(&builder); err != nil {
		return nil, fmt.Errorf("failed to render article text: %w", err)
	}

	return []byte(builder.String()), nil
}
