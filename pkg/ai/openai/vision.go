package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/insightgrid/insightgrid/pkg/ai"
	"github.com/insightgrid/insightgrid/pkg/loader"

	"github.com/openai/openai-go/v3"
)

// TranscribeImage sends a vision request with a base64-encoded image and
// returns the model's markdown transcription of the visible text.
func (c *VisionOpenAIClient) TranscribeImage(
	ctx context.Context,
	prompt string,
	img loader.Base64Content,
	opts ...ai.GenerateOption,
) (string, error) {
	options := ai.GenerateOptions{
		Model:       c.visionModel,
		Temperature: 0.0,
	}
	for _, o := range opts {
		o(&options)
	}

	body := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(options.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt),
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: img.DataURL(),
				}),
			}),
		},
		Temperature: openai.Float(options.Temperature),
	}

	response, err := c.send(ctx, body)
	if err != nil {
		return "", err
	}

	return response.Choices[0].Message.Content, nil
}

// ExtractPage sends a vision request constrained to the ai.Page schema
// and parses the model's JSON tolerantly.
func (c *VisionOpenAIClient) ExtractPage(
	ctx context.Context,
	img loader.Base64Content,
	opts ...ai.GenerateOption,
) (*ai.Page, error) {
	options := ai.GenerateOptions{
		Model:       c.visionModel,
		Temperature: 0.0,
	}
	for _, o := range opts {
		o(&options)
	}

	schema := ai.GenerateSchema(&ai.Page{})
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "article_page",
		Description: openai.String("The text content of one article image"),
		Schema:      schema,
		Strict:      openai.Bool(true),
	}

	body := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(options.Model),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(ai.ExtractPagePrompt),
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: img.DataURL(),
				}),
			}),
		},
		Temperature: openai.Float(options.Temperature),
	}

	response, err := c.send(ctx, body)
	if err != nil {
		return nil, err
	}

	var page ai.Page
	if err := ai.UnmarshalFlexible(response.Choices[0].Message.Content, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// send runs one bounded chat completion request and records its metrics.
func (c *VisionOpenAIClient) send(
	ctx context.Context,
	body openai.ChatCompletionNewParams,
) (*openai.ChatCompletion, error) {
	if c.Client == nil {
		return nil, fmt.Errorf("openai vision client is not configured")
	}

	if err := c.reqLock.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.reqLock.Release(1)

	start := time.Now()
	response, err := c.Client.Chat.Completions.New(ctx, body)
	if err != nil {
		return nil, err
	}
	duration := time.Since(start).Milliseconds()

	c.modifyMetrics(ai.ModelMetrics{
		InputTokens:  int(response.Usage.PromptTokens),
		OutputTokens: int(response.Usage.CompletionTokens),
		TotalTokens:  int(response.Usage.TotalTokens),
		DurationMs:   duration,
	})

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response from model")
	}

	return response, nil
}
