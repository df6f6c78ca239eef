// In file: internal/llm/gemini_client.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// GeminiClient is the client for Google's Gemini text-generation API.
// It is bound to one API key for its whole life.
type GeminiClient struct {
	client *genai.Client
	model  string
}

var _ Generator = (*GeminiClient)(nil)

// GeminiOption customizes a GeminiClient.
type GeminiOption func(*genai.ClientConfig)

// WithBaseURL points the client at a different endpoint, typically a test server.
func WithBaseURL(url string) GeminiOption {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPOptions.BaseURL = url
	}
}

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) GeminiOption {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPClient = hc
	}
}

// NewGeminiClient builds a client for apiKey. No network I/O happens here.
func NewGeminiClient(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: DefaultModel}, nil
}

// GeminiFactory returns a ClientFactory that builds GeminiClients with opts.
func GeminiFactory(opts ...GeminiOption) ClientFactory {
	return func(ctx context.Context, apiKey string) (Generator, error) {
		return NewGeminiClient(ctx, apiKey, opts...)
	}
}

// Generate performs one blocking generateContent request.
func (c *GeminiClient) Generate(ctx context.Context, prompt string, config *GenerationConfig) (*GenerationResult, error) {
	model := c.model
	genCfg := &genai.GenerateContentConfig{}
	if config != nil {
		if config.Model != "" {
			model = config.Model
		}
		genCfg.Temperature = config.Temperature
		if config.ThinkingBudget != nil {
			genCfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: config.ThinkingBudget}
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), genCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", toProviderError(err))
	}
	return parseGeminiResponse(resp), nil
}

// parseGeminiResponse flattens the candidate text and usage counters.
func parseGeminiResponse(resp *genai.GenerateContentResponse) *GenerationResult {
	result := &GenerationResult{}
	if resp == nil {
		return result
	}
	result.Content = resp.Text()
	if u := resp.UsageMetadata; u != nil {
		result.Usage = Usage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return result
}

// toProviderError converts a genai.APIError into a *ProviderError so callers
// never need to import the SDK. Other errors pass through untouched.
func toProviderError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Provider: providerGemini,
			Code:     apiErr.Code,
			Status:   apiErr.Status,
			Message:  apiErr.Message,
		}
	}
	return err
}
