// Package openai implements the ai.VisionClient interface on top of the
// OpenAI chat completions API, or any compatible endpoint.
package openai

import (
	"sync"

	"github.com/insightgrid/insightgrid/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"golang.org/x/sync/semaphore"
)

// VisionOpenAIClient reads article text from images via an OpenAI-style
// vision model. Concurrent requests are bounded by a weighted semaphore.
//
// A VisionOpenAIClient should be created using NewVisionOpenAIClient.
type VisionOpenAIClient struct {
	visionModel string
	baseURL     string
	apiKey      string

	reqLock *semaphore.Weighted

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	Client *openai.Client
}

// NewVisionOpenAIClientParams defines the configuration parameters for
// creating a new VisionOpenAIClient.
//
// VisionModel is the vision-capable model identifier. BaseURL may point
// at any OpenAI-compatible endpoint; an empty value selects the public
// API. MaxConcurrentRequests bounds in-flight requests, defaulting to 4.
type NewVisionOpenAIClientParams struct {
	VisionModel string
	BaseURL     string
	APIKey      string

	MaxConcurrentRequests int64
}

// NewVisionOpenAIClient creates and returns a new VisionOpenAIClient
// configured with the provided parameters.
func NewVisionOpenAIClient(params NewVisionOpenAIClientParams) *VisionOpenAIClient {
	parallel := params.MaxConcurrentRequests
	if parallel <= 0 {
		parallel = 4
	}

	return &VisionOpenAIClient{
		visionModel: params.VisionModel,
		baseURL:     params.BaseURL,
		apiKey:      params.APIKey,

		reqLock: semaphore.NewWeighted(parallel),

		metricsLock: sync.Mutex{},
		metrics:     ai.ModelMetrics{},

		Client: newOpenaiClient(params.BaseURL, params.APIKey),
	}
}

func newOpenaiClient(baseURL string, apiKey string) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}

	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)

	return &client
}

// ResetMetrics clears all accumulated token and timing metrics to zero.
func (c *VisionOpenAIClient) ResetMetrics() {
	c.metricsLock.Lock()
	c.metrics = ai.ModelMetrics{}
	c.metricsLock.Unlock()
}

// GetMetrics returns the accumulated token usage and timing metrics
// since the last reset.
func (c *VisionOpenAIClient) GetMetrics() ai.ModelMetrics {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	return c.metrics
}

func (c *VisionOpenAIClient) modifyMetrics(m ai.ModelMetrics) {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()

	c.metrics.InputTokens += m.InputTokens
	c.metrics.OutputTokens += m.OutputTokens
	c.metrics.TotalTokens += m.TotalTokens
	c.metrics.DurationMs += m.DurationMs
}
