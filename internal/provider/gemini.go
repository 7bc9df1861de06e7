package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiInvoker sends prompts to the Gemini API. This is the primary
// structured-output backend: the translate function schema maps onto native
// function declarations.
type GeminiInvoker struct {
	apiKey string
	model  string

	// the client is created on first use; clientOnce makes that safe for
	// concurrent invocations
	clientOnce sync.Once
	client     *genai.Client
	clientErr  error
}

// NewGeminiInvoker creates a new Gemini backend
func NewGeminiInvoker(apiKey, model string) *GeminiInvoker {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiInvoker{
		apiKey: apiKey,
		model:  model,
	}
}

// Name returns the backend name
func (i *GeminiInvoker) Name() string {
	return "gemini"
}

// IsAvailable checks if the backend is properly configured
func (i *GeminiInvoker) IsAvailable() error {
	if i.apiKey == "" {
		return fmt.Errorf("Gemini API key not found")
	}
	return nil
}

// Invoke sends the prompt and returns the normalized response. Function
// calls emitted by the model are surfaced as a StructuredCall.
func (i *GeminiInvoker) Invoke(ctx context.Context, req Request) (*Response, error) {
	if err := i.IsAvailable(); err != nil {
		return nil, err
	}

	i.clientOnce.Do(func() {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  i.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			i.clientErr = fmt.Errorf("failed to create Gemini client: %w", err)
			return
		}
		i.client = client
	})
	if i.clientErr != nil {
		return nil, i.clientErr
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Schema != nil {
		config.Tools = []*genai.Tool{
			{
				FunctionDeclarations: []*genai.FunctionDeclaration{
					functionDeclaration(req.Schema),
				},
			},
		}
	}

	resp, err := i.client.Models.GenerateContent(ctx, i.model, genai.Text(req.Prompt), config)
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}

	out := &Response{
		Text: strings.TrimSpace(resp.Text()),
	}

	if calls := resp.FunctionCalls(); len(calls) > 0 {
		out.Call = &StructuredCall{Name: calls[0].Name, Args: calls[0].Args}
	}

	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			PromptUnits:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionUnits: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalUnits:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	return out, nil
}

// functionDeclaration maps a FunctionSchema to the Gemini tool format
func functionDeclaration(s *FunctionSchema) *genai.FunctionDeclaration {
	props := make(map[string]*genai.Schema, len(s.Properties))
	for name, p := range s.Properties {
		t := genai.TypeString
		if p.Type == "number" {
			t = genai.TypeNumber
		}
		props[name] = &genai.Schema{Type: t, Description: p.Description}
	}
	return &genai.FunctionDeclaration{
		Name:        s.Name,
		Description: s.Description,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: props,
			Required:   s.Required,
		},
	}
}
