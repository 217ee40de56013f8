// Package ocr reads article text out of images using an AI vision backend.
package ocr

import (
	"context"
	"strings"
	"sync"

	"github.com/insightgrid/insightgrid/pkg/ai"
	"github.com/insightgrid/insightgrid/pkg/loader"
	"github.com/insightgrid/insightgrid/pkg/logger"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// OCRLoader turns image sources into article text. The image bytes come
// from an inner loader (web for http(s) URLs, file for local paths) and
// the text comes from the vision backend. Pages are transcribed in
// parallel and results are cached.
type OCRLoader struct {
	web    loader.TextLoader
	file   loader.TextLoader
	vision ai.VisionClient

	parallel int

	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewOCRLoaderParams contains configuration for creating an OCRLoader.
type NewOCRLoaderParams struct {
	// Web fetches image bytes for http(s) source values.
	Web loader.TextLoader
	// File fetches image bytes for local path source values.
	File loader.TextLoader

	Vision ai.VisionClient

	// Parallel bounds concurrent vision requests. Zero means 4.
	Parallel int
}

// NewOCRLoader creates a new OCR loader backed by the given vision client.
func NewOCRLoader(params NewOCRLoaderParams) *OCRLoader {
	parallel := params.Parallel
	if parallel <= 0 {
		parallel = 4
	}

	return &OCRLoader{
		web:      params.Web,
		file:     params.File,
		vision:   params.Vision,
		parallel: parallel,
		cache:    make(map[string][]byte),
	}
}

// LoadText loads an image and transcribes it to article text. Results
// are cached, and concurrent requests for the same source share a single
// transcription.
func (l *OCRLoader) LoadText(ctx context.Context, src loader.Source) ([]byte, error) {
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

		img, err := l.LoadBase64(ctx, src)
		if err != nil {
			return nil, err
		}

		output, err := l.TranscribePages(ctx, []loader.Base64Content{img})
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[key] = output
		l.cacheMu.Unlock()

		return output, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

// TranscribePages transcribes a series of page images in parallel and
// returns the concatenated article text. Each page goes through the
// structured page extraction first; if the backend cannot honor the
// schema the page falls back to plain transcription.
func (l *OCRLoader) TranscribePages(ctx context.Context, pages []loader.Base64Content) ([]byte, error) {
	output := make([]string, len(pages))
	outputMtx := sync.Mutex{}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(l.parallel)

	for i, p := range pages {
		idx := i
		page := p
		g.Go(func() error {
			logger.Debug("transcribing page", "page", idx+1, "total", len(pages))

			text, err := l.transcribe(gCtx, page)
			if err != nil {
				return err
			}

			outputMtx.Lock()
			output[idx] = text
			outputMtx.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	joined := make([]string, 0, len(output))
	for _, o := range output {
		if s := strings.TrimSpace(o); s != "" {
			joined = append(joined, s)
		}
	}

	return []byte(strings.Join(joined, "\n\n")), nil
}

// LoadBase64 loads the raw image encoded as base64 via the inner loader
// matching the source value.
func (l *OCRLoader) LoadBase64(ctx context.Context, src loader.Source) (loader.Base64Content, error) {
	inner := l.inner(src)
	if inner == nil {
		return loader.Base64Content{}, &loader.AcquisitionError{
			Source: src,
			Reason: loader.ReasonUnsupported,
			Detail: "no image loader configured",
		}
	}
	return inner.LoadBase64(ctx, src)
}

// InvalidateCache removes a single source from the cache.
func (l *OCRLoader) InvalidateCache(src loader.Source) {
	l.cacheMu.Lock()
	delete(l.cache, loader.CacheKey(src))
	l.cacheMu.Unlock()
}

// ClearCache removes all cached transcriptions.
func (l *OCRLoader) ClearCache() {
	l.cacheMu.Lock()
	l.cache = make(map[string][]byte)
	l.cacheMu.Unlock()
}

func (l *OCRLoader) transcribe(ctx context.Context, page loader.Base64Content) (string, error) {
	extracted, err := l.vision.ExtractPage(ctx, page)
	if err == nil {
		return extracted.Text(), nil
	}

	logger.Debug("structured page extraction failed, falling back to transcription", "error", err)

	return l.vision.TranscribeImage(ctx, ai.TranscribePrompt, page)
}

func (l *OCRLoader) inner(src loader.Source) loader.TextLoader {
	if strings.HasPrefix(src.Value, "http://") || strings.HasPrefix(src.Value, "https://") {
		return l.web
	}
	return l.file
}
