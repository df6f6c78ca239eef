// In file: internal/llm/constants.go
package llm

// This file centralizes the fixed generation parameters shared by the gateway
// and the Gemini client.
const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-flash"
	// DefaultTemperature is sent with every request.
	DefaultTemperature float32 = 0.7
	// DefaultThinkingBudget disables extended reasoning for lower latency.
	DefaultThinkingBudget int32 = 0
	// FallbackText is returned when the service answers with no text.
	FallbackText = "No response generated."

	// promptSeparator sits between the instruction template and the user input.
	promptSeparator = "\n\nUser Input:\n"

	providerGemini = "gemini"
)
