package testutil

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/snonux/lingo/internal/provider"
)

// MockInvoker mocks the model boundary for testing
type MockInvoker struct {
	// Responses maps a prompt substring to the response to return
	Responses map[string]*provider.Response
	// Response is returned when no substring matches
	Response *provider.Response
	// Err makes every invocation fail
	Err   error
	Calls []provider.Request
}

// Invoke records the request and returns the configured response
func (m *MockInvoker) Invoke(ctx context.Context, req provider.Request) (*provider.Response, error) {
	m.Calls = append(m.Calls, req)

	if m.Err != nil {
		return nil, m.Err
	}

	for key, resp := range m.Responses {
		if strings.Contains(req.Prompt, key) {
			return resp, nil
		}
	}

	if m.Response != nil {
		return m.Response, nil
	}

	// Default response
	return &provider.Response{Text: "mock translation"}, nil
}

// Name returns the mock backend name
func (m *MockInvoker) Name() string {
	return "mock"
}

// IsAvailable always succeeds
func (m *MockInvoker) IsAvailable() error {
	return nil
}

// MockBackend mocks glossary persistence
type MockBackend struct {
	Entries   map[string]map[string]string
	LoadErr   error
	SaveErr   error
	SaveCalls int
	Calls     []string
}

// Load returns the configured entries
func (m *MockBackend) Load() (map[string]map[string]string, error) {
	m.Calls = append(m.Calls, "LOAD")

	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Entries, nil
}

// Save stores the entries in memory
func (m *MockBackend) Save(entries map[string]map[string]string) error {
	m.SaveCalls++
	m.Calls = append(m.Calls, fmt.Sprintf("SAVE (%d phrases)", len(entries)))

	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Entries = entries
	return nil
}

// StructuredTranslationResponse builds a response carrying a translate_text
// function call with the given fields
func StructuredTranslationResponse(text, sourceLang, targetLang, translated string, confidence float64) *provider.Response {
	args := map[string]any{
		"text":           text,
		"sourceLang":     sourceLang,
		"targetLang":     targetLang,
		"translatedText": translated,
	}
	if confidence > 0 {
		args["confidence"] = confidence
	}
	return &provider.Response{
		Call: &provider.StructuredCall{Name: "translate_text", Args: args},
	}
}
