// In file: internal/llm/mock.go
package llm

import "context"

// MockClient is a Generator for tests.
type MockClient struct {
	GenerateFunc func(ctx context.Context, prompt string, config *GenerationConfig) (*GenerationResult, error)
}

func (m *MockClient) Generate(ctx context.Context, prompt string, config *GenerationConfig) (*GenerationResult, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, config)
	}
	return &GenerationResult{Content: "mock response"}, nil
}

// MockFactory returns a ClientFactory that always hands out m.
func MockFactory(m *MockClient) ClientFactory {
	return func(ctx context.Context, apiKey string) (Generator, error) {
		return m, nil
	}
}
