// In file: internal/llm/gateway.go
package llm

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/dileep-u-k/toolhub/internal/logging"
)

// =================================================================================
// Gateway
// =================================================================================

// Gateway forwards tool invocations to the model. It is safe for concurrent use.
type Gateway struct {
	defaultKey string
	model      string
	factory    ClientFactory
	log        *logging.Logger

	// defaultClient is filled once, on first use of the default credential.
	defaultClient atomic.Pointer[boundClient]
}

type boundClient struct {
	gen Generator
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(g *Gateway) {
		if model != "" {
			g.model = model
		}
	}
}

// WithLogger sets the logger used for failed calls.
func WithLogger(l *logging.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.log = l
		}
	}
}

// WithClientFactory replaces the Gemini client factory, mostly for tests.
func WithClientFactory(f ClientFactory) Option {
	return func(g *Gateway) {
		if f != nil {
			g.factory = f
		}
	}
}

// NewGateway creates a gateway whose default credential is defaultKey.
// An empty defaultKey is allowed; calls then need an override.
func NewGateway(defaultKey string, opts ...Option) *Gateway {
	g := &Gateway{
		defaultKey: strings.TrimSpace(defaultKey),
		model:      DefaultModel,
		factory:    GeminiFactory(),
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// HasDefaultCredential reports whether a default key is configured.
func (g *Gateway) HasDefaultCredential() bool {
	return g.defaultKey != ""
}

// Model returns the model every call is sent to.
func (g *Gateway) Model() string {
	return g.model
}

// Invoke composes the prompt from instructionTemplate and userInput, sends it
// with either the credential override or the default key, and returns the
// generated text.
//
// A blank userInput returns ErrEmptyInput. Every other failure is an
// *InvocationError whose message is safe to show to users.
func (g *Gateway) Invoke(ctx context.Context, instructionTemplate, userInput, credential string) (string, error) {
	if strings.TrimSpace(userInput) == "" {
		return "", ErrEmptyInput
	}

	client, err := g.clientFor(ctx, credential)
	if err != nil {
		g.log.Warn().Err(err).Msg("no usable credential")
		return "", err
	}

	result, err := client.Generate(ctx, ComposePrompt(instructionTemplate, userInput), g.generationConfig())
	if err != nil {
		ie := classify(err)
		g.log.Error().Err(err).Str("kind", string(ie.Kind)).Str("model", g.model).Msg("generation failed")
		return "", ie
	}

	if result == nil || result.Content == "" {
		return FallbackText, nil
	}
	g.log.Debug().
		Int("prompt_tokens", result.Usage.PromptTokens).
		Int("completion_tokens", result.Usage.CompletionTokens).
		Msg("generation succeeded")
	return result.Content, nil
}

func (g *Gateway) generationConfig() *GenerationConfig {
	temperature := DefaultTemperature
	budget := DefaultThinkingBudget
	return &GenerationConfig{
		Model:          g.model,
		Temperature:    &temperature,
		ThinkingBudget: &budget,
	}
}

// clientFor returns the client that serves credential.
func (g *Gateway) clientFor(ctx context.Context, credential string) (Generator, error) {
	key, route := resolveCredential(credential, g.defaultKey)
	switch route {
	case routeOverride:
		gen, err := g.factory(ctx, key)
		if err != nil {
			return nil, newConfigurationError(fmt.Errorf("failed to build client for custom key: %w", err))
		}
		return gen, nil
	case routeDefault:
		return g.loadDefaultClient(ctx)
	default:
		return nil, newConfigurationError(ErrNoCredential)
	}
}

// loadDefaultClient builds the default client on first use. Concurrent first
// callers may each build one; only the first to publish is kept.
func (g *Gateway) loadDefaultClient(ctx context.Context) (Generator, error) {
	if bc := g.defaultClient.Load(); bc != nil {
		return bc.gen, nil
	}
	gen, err := g.factory(ctx, g.defaultKey)
	if err != nil {
		return nil, newConfigurationError(fmt.Errorf("failed to build default client: %w", err))
	}
	if g.defaultClient.CompareAndSwap(nil, &boundClient{gen: gen}) {
		return gen, nil
	}
	return g.defaultClient.Load().gen, nil
}
