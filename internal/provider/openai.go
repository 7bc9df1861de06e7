package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is used when no model is configured
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIInvoker sends prompts to the OpenAI chat completion API
type OpenAIInvoker struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIInvoker creates a new OpenAI backend
func NewOpenAIInvoker(apiKey, model string) *OpenAIInvoker {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIInvoker{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Name returns the backend name
func (i *OpenAIInvoker) Name() string {
	return "openai"
}

// IsAvailable checks if the backend is properly configured
func (i *OpenAIInvoker) IsAvailable() error {
	if i.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found")
	}
	return nil
}

// Invoke sends the prompt as a single user message. When a schema is
// attached it is exposed as a function tool the model may call.
func (i *OpenAIInvoker) Invoke(ctx context.Context, req Request) (*Response, error) {
	if err := i.IsAvailable(); err != nil {
		return nil, err
	}

	chatReq := openai.ChatCompletionRequest{
		Model: i.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Prompt,
			},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	if req.Schema != nil {
		chatReq.Tools = []openai.Tool{
			{
				Type: openai.ToolTypeFunction,
				Function: &openai.FunctionDefinition{
					Name:        req.Schema.Name,
					Description: req.Schema.Description,
					Parameters:  jsonSchema(req.Schema),
				},
			},
		}
	}

	resp, err := i.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned")
	}

	msg := resp.Choices[0].Message
	out := &Response{
		Text: strings.TrimSpace(msg.Content),
		Usage: &Usage{
			PromptUnits:     resp.Usage.PromptTokens,
			CompletionUnits: resp.Usage.CompletionTokens,
			TotalUnits:      resp.Usage.TotalTokens,
		},
	}

	for _, tc := range msg.ToolCalls {
		if tc.Type != openai.ToolTypeFunction {
			continue
		}
		var args map[string]any
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			// malformed arguments: fall back to the free-text path
			continue
		}
		out.Call = &StructuredCall{Name: tc.Function.Name, Args: args}
		break
	}

	return out, nil
}

// jsonSchema renders a FunctionSchema as a JSON Schema object for the
// OpenAI tools API
func jsonSchema(s *FunctionSchema) map[string]any {
	props := make(map[string]any, len(s.Properties))
	for name, p := range s.Properties {
		props[name] = map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   s.Required,
	}
}
