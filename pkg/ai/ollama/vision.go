package ollama

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/insightgrid/insightgrid/pkg/ai"
	"github.com/insightgrid/insightgrid/pkg/loader"

	"github.com/ollama/ollama/api"
)

// TranscribeImage sends a vision chat request with a base64 image and
// returns the article text the model read out of it.
func (c *VisionOllamaClient) TranscribeImage(
	ctx context.Context,
	prompt string,
	img loader.Base64Content,
	opts ...ai.GenerateOption,
) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(img.Base64)
	if err != nil {
		return "", err
	}

	options := ai.GenerateOptions{
		Model:       c.visionModel,
		Temperature: 0.0,
	}
	for _, o := range opts {
		o(&options)
	}

	stream := false
	req := &api.ChatRequest{
		Model: options.Model,
		Messages: []api.Message{
			{Role: "system", Content: prompt},
			{
				Role:    "user",
				Content: "",
				Images:  []api.ImageData{raw},
			},
		},
		Stream:  &stream,
		Options: map[string]any{"temperature": options.Temperature},
	}

	final, err := c.chat(ctx, req)
	if err != nil {
		return "", err
	}

	return final.Message.Content, nil
}

// ExtractPage sends a vision chat request constrained to the page schema
// and returns the structured title and text blocks of the imaged article.
func (c *VisionOllamaClient) ExtractPage(
	ctx context.Context,
	img loader.Base64Content,
	opts ...ai.GenerateOption,
) (*ai.Page, error) {
	raw, err := base64.StdEncoding.DecodeString(img.Base64)
	if err != nil {
		return nil, err
	}

	schemaObj := ai.GenerateSchema(&ai.Page{})
	formatBytes, err := json.Marshal(schemaObj)
	if err != nil {
		return nil, err
	}
	var format json.RawMessage = formatBytes

	options := ai.GenerateOptions{
		Model:       c.visionModel,
		Temperature: 0.0,
	}
	for _, o := range opts {
		o(&options)
	}

	stream := false
	req := &api.ChatRequest{
		Model: options.Model,
		Messages: []api.Message{
			{Role: "system", Content: ai.ExtractPagePrompt},
			{
				Role:    "user",
				Content: "",
				Images:  []api.ImageData{raw},
			},
		},
		Stream:  &stream,
		Format:  format,
		Options: map[string]any{"temperature": options.Temperature},
	}

	final, err := c.chat(ctx, req)
	if err != nil {
		return nil, err
	}

	page := ai.Page{}
	if err := ai.UnmarshalFlexible(final.Message.Content, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// chat runs a single non-streaming chat request under the concurrency
// limit and accumulates the response plus its metrics.
func (c *VisionOllamaClient) chat(ctx context.Context, req *api.ChatRequest) (api.ChatResponse, error) {
	if c.Client == nil {
		return api.ChatResponse{}, errors.New("ollama client not configured")
	}

	if err := c.reqLock.Acquire(ctx, 1); err != nil {
		return api.ChatResponse{}, err
	}
	defer c.reqLock.Release(1)

	var final api.ChatResponse
	if err := c.Client.Chat(ctx, req, func(cr api.ChatResponse) error {
		final.Message.Content += cr.Message.Content
		if cr.Done {
			final.Done = true
			final.Metrics = cr.Metrics
			final.TotalDuration = cr.TotalDuration
		}
		return nil
	}); err != nil {
		return api.ChatResponse{}, err
	}

	metrics := ai.ModelMetrics{
		InputTokens:  final.Metrics.PromptEvalCount,
		OutputTokens: final.Metrics.EvalCount,
		TotalTokens:  final.Metrics.PromptEvalCount + final.Metrics.EvalCount,
		DurationMs:   final.TotalDuration.Milliseconds(),
	}
	c.modifyMetrics(metrics)

	return final, nil
}
