// In file: internal/llm/client.go
package llm

import (
	"context"
)

// =================================================================================
// Core Data Structures
// =================================================================================

// GenerationConfig holds the parameters that control one generation request.
type GenerationConfig struct {
	// The model to use, for example "gemini-2.5-flash".
	Model string
	// Controls randomness. A pointer distinguishes 0.0 from "unset".
	Temperature *float32
	// Token budget for the model's internal reasoning. Zero disables it.
	ThinkingBudget *int32
}

// Usage reports the token counts of one request.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// GenerationResult holds the complete output of one generation request.
type GenerationResult struct {
	// The generated text. Empty when the service returned no candidates.
	Content string
	// Token usage statistics for the request.
	Usage Usage
}

// =================================================================================
// Client Interface
// =================================================================================

// Generator is implemented by every model client. A Generator is bound to a
// single credential for its whole life.
type Generator interface {
	// Generate sends one non-streaming request and returns the complete result.
	// Service errors are returned unchanged so the caller can classify them.
	Generate(ctx context.Context, prompt string, config *GenerationConfig) (*GenerationResult, error)
}

// ClientFactory builds a Generator bound to apiKey. The gateway calls it lazily
// for the default credential and once per call for an override.
type ClientFactory func(ctx context.Context, apiKey string) (Generator, error)
