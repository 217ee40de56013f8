// Package ai defines the vision client used to read article text out of
// images. Backends wrap an external model API; the rest of the system only
// sees the VisionClient interface.
package ai

import (
	"context"
	"strings"

	"github.com/insightgrid/insightgrid/pkg/loader"
)

// GenerateOptions holds configuration for vision requests.
type GenerateOptions struct {
	Model       string  // Model identifier to use for the request
	Temperature float64 // Sampling temperature (0.0-2.0)
}

// GenerateOption is a functional option for configuring vision requests.
type GenerateOption func(*GenerateOptions)

// WithModel returns a GenerateOption that overrides the backend's
// configured vision model.
func WithModel(model string) GenerateOption {
	return func(o *GenerateOptions) {
		o.Model = model
	}
}

// WithTemperature returns a GenerateOption that sets the sampling
// temperature. Page extraction defaults to a low temperature so repeated
// runs stay close to deterministic.
func WithTemperature(temp float64) GenerateOption {
	return func(o *GenerateOptions) {
		o.Temperature = temp
	}
}

// ModelMetrics contains accumulated usage metrics from vision operations.
type ModelMetrics struct {
	InputTokens  int   `json:"input_tokens"`
	OutputTokens int   `json:"output_tokens"`
	TotalTokens  int   `json:"total_tokens"`
	DurationMs   int64 `json:"duration_ms"`
}

// Page is the schema-constrained result of extracting one image. Blocks
// hold the visible text in reading order; Title is the page headline when
// the model can identify one.
type Page struct {
	Title  string   `json:"title"`
	Blocks []string `json:"blocks"`
}

// Text flattens the page into plain text, title first.
func (p *Page) Text() string {
	parts := make([]string, 0, len(p.Blocks)+1)
	if strings.TrimSpace(p.Title) != "" {
		parts = append(parts, strings.TrimSpace(p.Title))
	}
	for _, b := range p.Blocks {
		if strings.TrimSpace(b) != "" {
			parts = append(parts, strings.TrimSpace(b))
		}
	}
	return strings.Join(parts, "\n\n")
}

// VisionClient is implemented by model backends that can read text from
// images. TranscribeImage returns a free-form markdown transcription;
// ExtractPage constrains the model to the Page schema and parses the
// response tolerantly.
type VisionClient interface {
	TranscribeImage(
		ctx context.Context,
		prompt string,
		img loader.Base64Content,
		opts ...GenerateOption,
	) (string, error)
	ExtractPage(
		ctx context.Context,
		img loader.Base64Content,
		opts ...GenerateOption,
	) (*Page, error)

	ResetMetrics()
	GetMetrics() ModelMetrics
}
