// Package web fetches remote articles over HTTP and reduces them to
// readable text.
package web

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/insightgrid/insightgrid/pkg/loader"

	"codeberg.org/readeck/go-readability/v2"
	"golang.org/x/net/html"
	"golang.org/x/sync/singleflight"
)

// WebLoader loads article content from web URLs. HTML pages go through
// readability so navigation, ads, and boilerplate are stripped before
// the text reaches the pipeline; plain-text responses pass through as-is.
type WebLoader struct {
	client   *http.Client
	maxBytes int64

	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewWebLoaderParams contains configuration options for creating a new
// WebLoader.
type NewWebLoaderParams struct {
	// Timeout bounds a single fetch. Zero means 30 seconds.
	Timeout time.Duration
	// MaxBytes caps the response body size. Zero means 8 MiB.
	MaxBytes int64
}

// NewWebLoader creates a new web loader.
func NewWebLoader(params NewWebLoaderParams) *WebLoader {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxBytes := params.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 8 << 20
	}

	return &WebLoader{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
		cache:    make(map[string][]byte),
	}
}

// LoadText fetches a URL and extracts its readable text content. HTML
// responses are reduced to the main article body with the page title
// prepended; text/plain responses are returned unmodified. Repeated
// requests for the same URL are served from cache, and concurrent
// requests for the same URL share a single fetch.
func (l *WebLoader) LoadText(ctx context.Context, src loader.Source) ([]byte, error) {
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

		body, contentType, err := l.fetch(ctx, src)
		if err != nil {
			return nil, err
		}

		var text []byte
		switch {
		case strings.Contains(contentType, "text/html"), strings.Contains(contentType, "application/xhtml"):
			text, err = extractArticle(src.Value, body)
			if err != nil {
				return nil, err
			}
		case strings.Contains(contentType, "text/"), contentType == "":
			text = body
		default:
			return nil, &loader.AcquisitionError{
				Source: src,
				Reason: loader.ReasonUnsupported,
				Detail: fmt.Sprintf("content type %q", contentType),
			}
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

// LoadBase64 fetches a URL and returns its raw content encoded as base64,
// with the content type taken from the response headers or guessed from
// the URL path.
func (l *WebLoader) LoadBase64(ctx context.Context, src loader.Source) (loader.Base64Content, error) {
	data, contentType, err := l.fetch(ctx, src)
	if err != nil {
		return loader.Base64Content{}, err
	}

	if contentType == "" {
		if u, err := url.Parse(src.Value); err == nil {
			contentType = mime.TypeByExtension(path.Ext(u.Path))
		}
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	return loader.Base64Content{
		Base64:      base64.StdEncoding.EncodeToString(data),
		ContentType: fmt.Sprintf("data:%s;base64,", contentType),
	}, nil
}

// InvalidateCache removes a single URL from the cache.
func (l *WebLoader) InvalidateCache(src loader.Source) {
	l.cacheMu.Lock()
	delete(l.cache, loader.CacheKey(src))
	l.cacheMu.Unlock()
}

// ClearCache removes all cached content.
func (l *WebLoader) ClearCache() {
	l.cacheMu.Lock()
	l.cache = make(map[string][]byte)
	l.cacheMu.Unlock()
}

func (l *WebLoader) fetch(ctx context.Context, src loader.Source) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.Value, nil)
	if err != nil {
		return nil, "", &loader.AcquisitionError{
			Source: src,
			Reason: loader.ReasonUnreachable,
			Detail: "invalid url",
			Err:    err,
		}
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, "", &loader.AcquisitionError{
			Source: src,
			Reason: loader.ReasonUnreachable,
			Err:    err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &loader.AcquisitionError{
			Source: src,
			Reason: loader.ReasonBadStatus,
			Detail: resp.Status,
		}
	}

	body, err := l.readCapped(src, resp.Body)
	if err != nil {
		return nil, "", err
	}

	return body, resp.Header.Get("Content-Type"), nil
}

func (l *WebLoader) readCapped(src loader.Source, r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, &loader.AcquisitionError{
			Source: src,
			Reason: loader.ReasonUnreachable,
			Detail: "reading response body",
			Err:    err,
		}
	}
	if int64(len(data)) > l.maxBytes {
		return nil, &loader.AcquisitionError{
			Source: src,
			Reason: loader.ReasonTooLarge,
			Detail: fmt.Sprintf("body exceeds %d bytes", l.maxBytes),
		}
	}
	return data, nil
}

// extractArticle runs readability over an HTML document and prepends the
// page title so headline wording stays available to the pipeline.
func extractArticle(rawURL string, body []byte) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(body), u)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var builder strings.Builder
	if title := documentTitle(body); title != "" {
		builder.WriteString(title)
		builder.WriteString("\n\n")
	}
	if err := article.RenderText(&builder); err != nil {
		return nil, fmt.Errorf("failed to render article text: %w", err)
	}

	return []byte(builder.String()), nil
}

// documentTitle returns the text of the first <title> element, or "".
func documentTitle(body []byte) string {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return title
}
