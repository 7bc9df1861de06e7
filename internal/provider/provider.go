package provider

import (
	"context"
	"fmt"
)

// Request carries a rendered prompt plus generation options to the model
// boundary. When Schema is set the invoker asks the model to answer through
// the named function instead of free text; the model is not guaranteed to
// honor it.
type Request struct {
	Prompt      string
	Temperature float32 // 0..1
	MaxTokens   int
	Schema      *FunctionSchema
}

// FunctionSchema describes a structured-output function the model may call
type FunctionSchema struct {
	Name        string
	Description string
	Properties  map[string]Property
	Required    []string
}

// Property is a single parameter of a FunctionSchema
type Property struct {
	Type        string // "string" or "number"
	Description string
}

// StructuredCall is a function-call payload extracted from a model response
type StructuredCall struct {
	Name string
	Args map[string]any
}

// Usage reports token accounting when the backend supplies it
type Usage struct {
	PromptUnits     int
	CompletionUnits int
	TotalUnits      int
}

// Response is the normalized model response shape. Text is always the free
// text (possibly empty); Call is set only when the model emitted a function
// call.
type Response struct {
	Text  string
	Call  *StructuredCall
	Usage *Usage
}

// Invoker defines the interface for generative model backends
type Invoker interface {
	// Invoke sends one request and returns the normalized response
	Invoke(ctx context.Context, req Request) (*Response, error)

	// Name returns the backend name
	Name() string

	// IsAvailable checks if the backend is properly configured
	IsAvailable() error
}

// Config holds common configuration for model backends
type Config struct {
	Provider  string // "openai" or "gemini"
	Model     string // backend-specific model ID, empty for the default
	OpenAIKey string
	GeminiKey string
}

// NewInvoker creates the appropriate model backend based on configuration,
// wrapped in a circuit breaker. The model call is the pipeline's only
// unbounded-latency step, so it is the only place a breaker lives.
func NewInvoker(config *Config) (Invoker, error) {
	if config == nil {
		return nil, fmt.Errorf("provider config is required")
	}

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewBreakerInvoker(NewOpenAIInvoker(config.OpenAIKey, config.Model)), nil

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewBreakerInvoker(NewGeminiInvoker(config.GeminiKey, config.Model)), nil

	default:
		return nil, fmt.Errorf("unknown model provider: %s", config.Provider)
	}
}
